package normalize

import "strings"

var (
	yesWords  = []string{"yes", "y", "true", "1"}
	markWords = []string{"yes", "y", "true", "1", "x"}
	noWords   = []string{"no", "n", "false", "0"}
)

// InterpretYes reports whether s is an explicit affirmative (yes, y, true, 1),
// ignoring case.
func InterpretYes(s string) bool {
	return isOneOf(s, yesWords)
}

// InterpretYesMark is InterpretYes that also accepts an "x" checkmark. Use it
// only for columns where the sheet marks acceptance with a letter.
func InterpretYesMark(s string) bool {
	return isOneOf(s, markWords)
}

// InterpretNo reports whether s is an explicit negative (no, n, false, 0),
// ignoring case. It is not the complement of InterpretYes: blank and
// unrecognized values are neither.
func InterpretNo(s string) bool {
	return isOneOf(s, noWords)
}

// SplitPipeList splits a pipe-delimited cell, trimming each entry and dropping
// empty ones. Order is preserved; a blank cell yields an empty slice.
func SplitPipeList(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isOneOf(s string, words []string) bool {
	v := strings.ToLower(s)
	for _, w := range words {
		if v == w {
			return true
		}
	}
	return false
}
