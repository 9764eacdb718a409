package utils

import "strings"

// SplitCommaList splits a comma-delimited list, trimming blanks and dropping
// empty entries.
func SplitCommaList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
