package playlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var (
	// attribute values sit in double quotes before the comma that starts the title
	attrEscaper  = strings.NewReplacer(`"`, "'", ",", ";", "\n", " ", "\r", " ")
	titleEscaper = strings.NewReplacer("\n", " ", "\r", " ")
)

// Encode writes channels back as an extended M3U playlist.
// Double quotes and commas in attribute values are replaced.
func Encode(w io.Writer, channels []*Channel) error {
	out := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(out, headerMarker); err != nil {
		return err
	}

	for _, channel := range channels {
		var attrs strings.Builder
		if channel.TvgID != "" {
			fmt.Fprintf(&attrs, ` tvg-id="%s"`, attrEscaper.Replace(channel.TvgID))
		}
		if channel.Logo != "" {
			fmt.Fprintf(&attrs, ` tvg-logo="%s"`, attrEscaper.Replace(channel.Logo))
		}
		fmt.Fprintf(&attrs, ` group-title="%s"`, attrEscaper.Replace(channel.Group))

		title := titleEscaper.Replace(channel.Title)
		if _, err := fmt.Fprintf(out, "%s:-1%s,%s\n%s\n", entryMarker, attrs.String(), title, channel.URL); err != nil {
			return err
		}
	}

	return out.Flush()
}
