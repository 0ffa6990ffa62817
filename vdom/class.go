package vdom

import "strings"

// Class merges class lists into one attribute value. Empty inputs are
// skipped and repeated classes are kept once, in first-seen order.
func Class(inputs ...string) string {
	var classes []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		for _, part := range strings.Fields(input) {
			if !seen[part] {
				classes = append(classes, part)
				seen[part] = true
			}
		}
	}
	return strings.Join(classes, " ")
}
