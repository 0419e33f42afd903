package model

// CategoryClass is the color lane a site's card is drawn in.
type CategoryClass string

const (
	CategoryMH          CategoryClass = "mh"
	CategoryRespite     CategoryClass = "respite"
	CategorySUDWM       CategoryClass = "sud-withdrawal-mgmt"
	CategorySUDSubacute CategoryClass = "sud-subacute"
	CategoryNone        CategoryClass = "none"
)

// Admission classifies the admission type column.
type Admission string

const (
	AdmissionDualKey   Admission = "dual-key"
	AdmissionVoluntary Admission = "voluntary"
	AdmissionUnknown   Admission = "unknown"
)

// IconUnknown is the fallback icon for unrecognized admission or lock values.
const IconUnknown = "help"

// Icon returns the material symbol for the admission class.
func (a Admission) Icon() string {
	switch a {
	case AdmissionDualKey:
		return "key"
	case AdmissionVoluntary:
		return "volunteer_activism"
	}
	return IconUnknown
}

// LockStatus classifies the locked-status column.
type LockStatus string

const (
	LockUnlocked LockStatus = "unlocked"
	LockLocked   LockStatus = "locked"
	LockUnknown  LockStatus = "unknown"
)

// Icon returns the material symbol for the lock status.
func (l LockStatus) Icon() string {
	switch l {
	case LockUnlocked:
		return "lock_open"
	case LockLocked:
		return "lock"
	}
	return IconUnknown
}

// Tone is the visual severity applied to an icon.
type Tone string

const (
	ToneNone Tone = ""
	ToneOK   Tone = "ok"
	ToneWarn Tone = "warn"
	ToneErr  Tone = "err"
)

// Complexity is the simplified intake complexity. Tier 0 means unspecified,
// 1 is the lightest and 4 the heaviest; it only selects a tone.
type Complexity struct {
	Tier  int    `json:"tier"`
	Label string `json:"label"`
}

// Tone maps the tier onto a visual severity.
func (c Complexity) Tone() Tone {
	switch {
	case c.Tier == 1:
		return ToneOK
	case c.Tier == 3:
		return ToneWarn
	case c.Tier >= 4:
		return ToneErr
	}
	return ToneNone
}

// Labeled pairs a short display label with an icon.
type Labeled struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// TransportMode is one recognized way of getting a client to or from a site.
type TransportMode struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var (
	ModeEMS    = TransportMode{Label: "EMS", Icon: "emergency"}
	ModePolice = TransportMode{Label: "Police", Icon: "local_police"}
	ModeTaxi   = TransportMode{Label: "Taxi", Icon: "local_taxi"}
	ModeRide   = TransportMode{Label: "Ride", Icon: "local_taxi"}
	ModeVan    = TransportMode{Label: "Van", Icon: "airport_shuttle"}
)

// MaxTransportIcons caps how many transport icons a card stacks.
const MaxTransportIcons = 3

// Transport is the ordered set of modes found in one transport column.
type Transport struct {
	Modes []TransportMode `json:"modes"`
}

// Labels returns every matched mode label.
func (t Transport) Labels() []string {
	out := make([]string, len(t.Modes))
	for i, m := range t.Modes {
		out[i] = m.Label
	}
	return out
}

// Icons returns the icons of the first MaxTransportIcons modes.
func (t Transport) Icons() []string {
	n := len(t.Modes)
	if n > MaxTransportIcons {
		n = MaxTransportIcons
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = t.Modes[i].Icon
	}
	return out
}

// Empty reports whether no mode was recognized.
func (t Transport) Empty() bool { return len(t.Modes) == 0 }

// SourceMark tags one vocabulary source as present or absent for a site.
type SourceMark struct {
	Source
	Present bool
}

// AcceptedSet is the accepted-from vocabulary evaluated for one site.
type AcceptedSet struct {
	Marks   []SourceMark // every tracked source in AllSources order
	Entries []string     // raw accepted-from entries in sheet order
	Icons   []string     // one icon per entry, in sheet order
	Other   []string     // entries outside the vocabulary
}

// All returns every tracked source tagged with its presence.
func (a AcceptedSet) All() []SourceMark { return a.Marks }

// Present returns only the sources the site accepts from.
func (a AcceptedSet) Present() []SourceMark {
	out := make([]SourceMark, 0, len(a.Marks))
	for _, m := range a.Marks {
		if m.Present {
			out = append(out, m)
		}
	}
	return out
}

// Has reports whether the given source is present.
func (a AcceptedSet) Has(key SourceKey) bool {
	for _, m := range a.Marks {
		if m.Key == key {
			return m.Present
		}
	}
	return false
}

// Descriptor is the normalized, symbolic view of one SiteRow. It is derived on
// every render and never stored.
type Descriptor struct {
	Key      string
	Title    string
	Subtitle string
	Location string
	Hours    string
	Beds     string

	Category   CategoryClass
	Admission  Admission
	Lock       LockStatus
	Complexity Complexity
	Medical    Labeled
	Stay       Labeled

	DropIn              bool
	DropOff             bool
	NotADA              bool
	CapacityConstrained bool
	TransportSupport    bool

	Accepted     AcceptedSet
	TransportIn  Transport
	TransportOut Transport

	Phone  string
	MapURL string
}
