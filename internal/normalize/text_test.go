package normalize

import (
	"reflect"
	"testing"
)

func TestInterpretYes(t *testing.T) {
	for _, v := range []string{"YES", "yes", "Y", "1", "true", "True"} {
		if !InterpretYes(v) {
			t.Errorf("InterpretYes(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"", "maybe", "x", "X", "no", " yes"} {
		if InterpretYes(v) {
			t.Errorf("InterpretYes(%q) = true, want false", v)
		}
	}
}

func TestInterpretYesMark(t *testing.T) {
	for _, v := range []string{"x", "X", "yes", "1"} {
		if !InterpretYesMark(v) {
			t.Errorf("InterpretYesMark(%q) = false, want true", v)
		}
	}
	if InterpretYesMark("") {
		t.Error("blank cell must not count as a checkmark")
	}
}

func TestInterpretNoIsNotComplement(t *testing.T) {
	for _, v := range []string{"no", "N", "FALSE", "0"} {
		if !InterpretNo(v) {
			t.Errorf("InterpretNo(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"", "unknown", "partial"} {
		if InterpretYes(v) || InterpretNo(v) {
			t.Errorf("%q should be neither yes nor no", v)
		}
	}
}

func TestSplitPipeList(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "trims and keeps order", input: "a | b|c ", want: []string{"a", "b", "c"}},
		{name: "empty", input: "", want: []string{}},
		{name: "drops empty segments", input: "|self||  |police|", want: []string{"self", "police"}},
		{name: "single", input: "Community", want: []string{"Community"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitPipeList(tc.input)
			if got == nil {
				t.Fatal("got nil slice")
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestExtractPhoneDigits(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "parens and dash", input: "call (415) 555-1212 now", want: "4155551212"},
		{name: "dots", input: "Intake line 415.555.0000", want: "4155550000"},
		{name: "country code", input: "+1 415 555 1212", want: "+14155551212"},
		{name: "first match only", input: "415-555-1111 or 415-555-2222", want: "4155551111"},
		{name: "none", input: "walk in, no phone", want: ""},
		{name: "empty", input: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractPhoneDigits(tc.input); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
