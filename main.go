// Package main is the entry point for tvplay.
package main

import (
	"github.com/samber/lo"
	"github.com/tvplay/tvplay/cmd"
	"github.com/tvplay/tvplay/config"
	"github.com/tvplay/tvplay/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
