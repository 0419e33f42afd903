package normalize

import "strings"

// rule pairs a predicate over a lower-cased value with the result it selects.
type rule[T any] struct {
	match  func(v string) bool
	result T
}

// firstMatch lower-cases value and returns the result of the first matching
// rule. Order is semantic; def is returned when no rule matches.
func firstMatch[T any](value string, rules []rule[T], def T) T {
	v := strings.ToLower(value)
	for _, r := range rules {
		if r.match(v) {
			return r.result
		}
	}
	return def
}

// allMatches returns the result of every matching rule, in rule order. Each
// rule contributes at most once.
func allMatches[T any](value string, rules []rule[T]) []T {
	v := strings.ToLower(value)
	out := []T{}
	for _, r := range rules {
		if r.match(v) {
			out = append(out, r.result)
		}
	}
	return out
}

func contains(subs ...string) func(string) bool {
	return func(v string) bool {
		for _, s := range subs {
			if strings.Contains(v, s) {
				return true
			}
		}
		return false
	}
}

func equals(words ...string) func(string) bool {
	return func(v string) bool {
		for _, w := range words {
			if v == w {
				return true
			}
		}
		return false
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
