package normalize

import (
	"reflect"
	"testing"

	"github.com/gyeh/sitecards/internal/model"
)

func TestCategory(t *testing.T) {
	cases := []struct {
		input string
		want  model.CategoryClass
	}{
		{"MH Acute Care", model.CategoryMH},
		{"Respite", model.CategoryRespite},
		{"SUD WM Program", model.CategorySUDWM},
		{"SUD Subacute", model.CategorySUDSubacute},
		{"Outpatient", model.CategoryNone},
		{"", model.CategoryNone},
		{"MH acute respite", model.CategoryMH},
	}
	for _, tc := range cases {
		if got := Category(tc.input); got != tc.want {
			t.Errorf("Category(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestAdmissionClass(t *testing.T) {
	cases := []struct {
		input string
		want  model.Admission
		icon  string
	}{
		{"Both (voluntary & involuntary)", model.AdmissionDualKey, "key"},
		{"Voluntary only", model.AdmissionVoluntary, "volunteer_activism"},
		{"Involuntary", model.AdmissionVoluntary, "volunteer_activism"},
		{"5150", model.AdmissionUnknown, "help"},
		{"", model.AdmissionUnknown, "help"},
	}
	for _, tc := range cases {
		got := AdmissionClass(tc.input)
		if got != tc.want || got.Icon() != tc.icon {
			t.Errorf("AdmissionClass(%q) = %q/%q, want %q/%q", tc.input, got, got.Icon(), tc.want, tc.icon)
		}
	}
}

func TestLockClass(t *testing.T) {
	cases := []struct {
		input string
		want  model.LockStatus
	}{
		{"Unlocked", model.LockUnlocked},
		{"Locked/Both", model.LockLocked},
		{"Both", model.LockLocked},
		{"LOCKED", model.LockLocked},
		{"secure", model.LockUnknown},
		{"", model.LockUnknown},
	}
	for _, tc := range cases {
		if got := LockClass(tc.input); got != tc.want {
			t.Errorf("LockClass(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
	if LockClass("Unlocked").Icon() != "lock_open" {
		t.Errorf("unlocked icon = %q", LockClass("Unlocked").Icon())
	}
}

func TestSourceIcon(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"self", "person"},
		{"Self", "person"},
		{"community", "groups"},
		{"StreetTeams", "diversity_3"},
		{"Street Outreach Team", "diversity_3"},
		{"SFPD Police", "local_police"},
		{"EMS", "emergency"},
		{"Hospital", "local_hospital"},
		{"ED", "local_hospital"},
		{"BHAC", "badge"},
		{"family member", "group_add"},
		{"self referral", "group_add"},
	}
	for _, tc := range cases {
		if got := SourceIcon(tc.input); got != tc.want {
			t.Errorf("SourceIcon(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestAcceptedShapes(t *testing.T) {
	row := &model.SiteRow{AcceptedFrom: "Self | Police | family", AcceptsBHAC: "x"}
	set := Accepted(row)

	if len(set.All()) != len(model.AllSources) {
		t.Fatalf("All() len = %d, want %d", len(set.All()), len(model.AllSources))
	}
	var present []model.SourceKey
	for _, m := range set.Present() {
		present = append(present, m.Key)
	}
	want := []model.SourceKey{model.SourceSelf, model.SourcePolice, model.SourceBHAC}
	if !reflect.DeepEqual(present, want) {
		t.Fatalf("Present() = %v, want %v", present, want)
	}
	if !reflect.DeepEqual(set.Icons, []string{"person", "local_police", "group_add"}) {
		t.Errorf("Icons = %v", set.Icons)
	}
	if !reflect.DeepEqual(set.Other, []string{"family"}) {
		t.Errorf("Other = %v", set.Other)
	}
	if set.Has(model.SourceEMS) {
		t.Error("EMS should be absent")
	}
}

func TestAcceptedYesIsNotEnoughForPlainPredicate(t *testing.T) {
	// checkmark columns use the "x"-aware predicate
	set := Accepted(&model.SiteRow{AcceptsPolice: "X"})
	if !set.Has(model.SourcePolice) {
		t.Fatal("X checkmark should mark police present")
	}
	if len(set.Entries) != 0 || len(set.Icons) != 0 {
		t.Fatalf("no list entries expected, got %v", set.Entries)
	}
}

func TestSimplifyComplexity(t *testing.T) {
	cases := []struct {
		input string
		want  model.Complexity
		tone  model.Tone
	}{
		{"Immediate walk-in", model.Complexity{Tier: 1, Label: "Walk-through"}, model.ToneOK},
		{"Brief phone screen", model.Complexity{Tier: 2, Label: "Brief screen"}, model.ToneNone},
		{"Pre-Authorization Required", model.Complexity{Tier: 4, Label: "Pre-auth"}, model.ToneErr},
		{"Full assessment", model.Complexity{Tier: 3, Label: "Full assessment"}, model.ToneWarn},
		{"Call ahead", model.Complexity{Tier: 2, Label: "Call ahead"}, model.ToneNone},
		{"", model.Complexity{Tier: 0, Label: "-"}, model.ToneNone},
		{"   ", model.Complexity{Tier: 0, Label: "-"}, model.ToneNone},
	}
	for _, tc := range cases {
		got := SimplifyComplexity(tc.input)
		if got != tc.want {
			t.Errorf("SimplifyComplexity(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
		if got.Tone() != tc.tone {
			t.Errorf("SimplifyComplexity(%q).Tone() = %q, want %q", tc.input, got.Tone(), tc.tone)
		}
	}
}

func TestSimplifyMedical(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"TB test required", "TB"},
		{"Must go through ED", "Through ED"},
		{"None", "None/basic"},
		{"No clearance", "None/basic"},
		{"Vitals at intake", "Vitals at intake"},
		{"", "-"},
		{" \t", "-"},
	}
	for _, tc := range cases {
		if got := SimplifyMedical(tc.input).Label; got != tc.want {
			t.Errorf("SimplifyMedical(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestLengthOfStay(t *testing.T) {
	if got := LengthOfStay("<24 hours").Icon; got != "wb_sunny" {
		t.Errorf("<24 icon = %q", got)
	}
	if got := LengthOfStay(">24h").Icon; got != "nights_stay" {
		t.Errorf(">24 icon = %q", got)
	}
	for _, v := range []string{"", "  "} {
		if got := LengthOfStay(v); got.Label != "-" || got.Icon != "schedule" {
			t.Errorf("LengthOfStay(%q) = %+v", v, got)
		}
	}
}

func TestCapacityConstrained(t *testing.T) {
	if !CapacityConstrained("Yes") {
		t.Error("Yes should be constrained")
	}
	if CapacityConstrained("y") || CapacityConstrained("") {
		t.Error("only an exact yes flags capacity")
	}
}

func TestTransportModes(t *testing.T) {
	tr := TransportModes("Ambulance, police, taxi, Uber, van")
	if want := []string{"EMS", "Police", "Taxi", "Ride", "Van"}; !reflect.DeepEqual(tr.Labels(), want) {
		t.Fatalf("Labels() = %v, want %v", tr.Labels(), want)
	}
	if want := []string{"emergency", "local_police", "local_taxi"}; !reflect.DeepEqual(tr.Icons(), want) {
		t.Fatalf("Icons() = %v, want %v", tr.Icons(), want)
	}

	if got := TransportModes("ambulance and ems").Labels(); !reflect.DeepEqual(got, []string{"EMS"}) {
		t.Errorf("synonyms matched %v", got)
	}
	if got := TransportModes("taxi or lyft").Icons(); !reflect.DeepEqual(got, []string{"local_taxi", "local_taxi"}) {
		t.Errorf("taxi+ride icons = %v", got)
	}
	if !TransportModes("").Empty() {
		t.Error("blank column should have no modes")
	}
}

func TestHasTransportSupport(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"Van voucher", true},
		{"Bus tokens", true},
		{"Transportation provided", true},
		{"None", false},
		{"No support", false},
		{"Support available, no vans on weekends", false},
		{"Ask staff", false},
	}
	for _, tc := range cases {
		if got := HasTransportSupport(tc.input); got != tc.want {
			t.Errorf("HasTransportSupport(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
