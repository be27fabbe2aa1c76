package algo

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/huangsam/wikistat/schema"
)

var dateRegex = regexp.MustCompile(`[0-9]{4}-[0-9]{2}-[0-9]{2}`)

// ExtractYear returns the year of the first yyyy-mm-dd date found in s.
func ExtractYear(s string) (int, error) {
	loc := dateRegex.FindStringIndex(s)
	if loc == nil {
		return 0, fmt.Errorf("%w: no date in %q", schema.ErrMalformedTimestamp, truncate(s, 64))
	}
	year, err := strconv.Atoi(s[loc[0] : loc[0]+4])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", schema.ErrMalformedTimestamp, err)
	}
	return year, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
