package web

import (
	"encoding/json"
	"net/http"

	"github.com/gyeh/sitecards/internal/model"
	"github.com/gyeh/sitecards/internal/normalize"
	"github.com/gyeh/sitecards/internal/sites"
)

type iconValue struct {
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

type sourceJSON struct {
	Key     model.SourceKey `json:"key"`
	Label   string          `json:"label"`
	Icon    string          `json:"icon"`
	Present bool            `json:"present"`
}

type complexityJSON struct {
	Tier  int        `json:"tier"`
	Label string     `json:"label"`
	Tone  model.Tone `json:"tone,omitempty"`
}

type transportJSON struct {
	Labels []string `json:"labels"`
	Icons  []string `json:"icons"`
}

type siteJSON struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Location string `json:"location"`
	Hours    string `json:"hours"`
	Beds     string `json:"beds"`

	Category   model.CategoryClass `json:"category"`
	Admission  iconValue           `json:"admission"`
	Lock       iconValue           `json:"lock"`
	Complexity complexityJSON      `json:"complexity"`
	Medical    model.Labeled       `json:"medical"`
	Stay       model.Labeled       `json:"stay"`

	DropIn              bool `json:"drop_in"`
	DropOff             bool `json:"drop_off"`
	NotADA              bool `json:"not_ada"`
	CapacityConstrained bool `json:"capacity_constrained"`
	TransportSupport    bool `json:"transport_support"`

	Accepted      []sourceJSON  `json:"accepted"`
	AcceptedOther []string      `json:"accepted_other"`
	SourceIcons   []string      `json:"source_icons"`
	TransportIn   transportJSON `json:"transport_in"`
	TransportOut  transportJSON `json:"transport_out"`

	Phone  string `json:"phone,omitempty"`
	MapURL string `json:"map_url,omitempty"`
}

type sitesResponse struct {
	Generation uint64     `json:"generation"`
	Total      int        `json:"total"`
	Count      int        `json:"count"`
	Sites      []siteJSON `json:"sites"`
}

func toSiteJSON(d *model.Descriptor, presentOnly bool) siteJSON {
	marks := d.Accepted.All()
	if presentOnly {
		marks = d.Accepted.Present()
	}
	accepted := make([]sourceJSON, len(marks))
	for i, m := range marks {
		accepted[i] = sourceJSON{Key: m.Key, Label: m.Label, Icon: m.Icon, Present: m.Present}
	}
	return siteJSON{
		Key:      d.Key,
		Title:    d.Title,
		Subtitle: d.Subtitle,
		Location: d.Location,
		Hours:    d.Hours,
		Beds:     d.Beds,

		Category:   d.Category,
		Admission:  iconValue{Value: string(d.Admission), Icon: d.Admission.Icon()},
		Lock:       iconValue{Value: string(d.Lock), Icon: d.Lock.Icon()},
		Complexity: complexityJSON{Tier: d.Complexity.Tier, Label: d.Complexity.Label, Tone: d.Complexity.Tone()},
		Medical:    d.Medical,
		Stay:       d.Stay,

		DropIn:              d.DropIn,
		DropOff:             d.DropOff,
		NotADA:              d.NotADA,
		CapacityConstrained: d.CapacityConstrained,
		TransportSupport:    d.TransportSupport,

		Accepted:      accepted,
		AcceptedOther: d.Accepted.Other,
		SourceIcons:   d.Accepted.Icons,
		TransportIn:   transportJSON{Labels: d.TransportIn.Labels(), Icons: d.TransportIn.Icons()},
		TransportOut:  transportJSON{Labels: d.TransportOut.Labels(), Icons: d.TransportOut.Icons()},

		Phone:  d.Phone,
		MapURL: d.MapURL,
	}
}

func (s *Server) handleAPISites(w http.ResponseWriter, r *http.Request) {
	presentOnly := false
	switch r.URL.Query().Get("accepted") {
	case "", "all":
	case "present":
		presentOnly = true
	default:
		respondError(w, http.StatusBadRequest, "accepted must be all or present")
		return
	}

	rows, gen := s.store.Snapshot()
	filtered := sites.Filter(rows, r.URL.Query().Get("q"))
	out := make([]siteJSON, len(filtered))
	for i := range filtered {
		d := normalize.Describe(&filtered[i])
		out[i] = toSiteJSON(&d, presentOnly)
	}
	respondJSON(w, http.StatusOK, sitesResponse{
		Generation: gen,
		Total:      len(rows),
		Count:      len(out),
		Sites:      out,
	})
}

func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	summary := s.store.LastSummary()
	if summary == nil {
		respondError(w, http.StatusNotFound, "no sites loaded yet")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	rows, gen := s.store.Snapshot()
	respondJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"records":    len(rows),
		"generation": gen,
	})
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
