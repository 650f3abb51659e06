package playlist

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort orders channels by group, then by title, keeping the relative order of equal entries.
// A non-empty locale switches from byte comparison to locale collation.
func Sort(channels []*Channel, locale string) {
	compare := func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}

	if locale != "" {
		tag, err := language.Parse(locale)
		if err == nil {
			collator := collate.New(tag)
			compare = collator.CompareString
		}
	}

	sort.SliceStable(channels, func(i, j int) bool {
		if c := compare(channels[i].Group, channels[j].Group); c != 0 {
			return c < 0
		}
		return compare(channels[i].Title, channels[j].Title) < 0
	})
}
