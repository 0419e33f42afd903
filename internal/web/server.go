// Package web serves the site cards as HTML and JSON.
package web

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gyeh/sitecards/internal/ingest"
	"github.com/gyeh/sitecards/internal/metrics"
	"github.com/gyeh/sitecards/internal/prefs"
	"github.com/gyeh/sitecards/internal/sites"
)

// Options wires a Server to its collaborators.
type Options struct {
	Store   *sites.Store
	Loader  *ingest.Loader
	State   *prefs.State
	Metrics *metrics.Metrics
	Log     zerolog.Logger

	// Source is reloaded by POST /load.
	Source ingest.Source

	MaxUploadBytes int64
	CORSOrigins    []string
}

// Server renders the current record set.
type Server struct {
	store     *sites.Store
	loader    *ingest.Loader
	state     *prefs.State
	metrics   *metrics.Metrics
	log       zerolog.Logger
	source    ingest.Source
	maxUpload int64
	origins   []string
	tmpl      *template.Template
}

func New(opts Options) (*Server, error) {
	if opts.Store == nil || opts.Loader == nil || opts.State == nil {
		return nil, errors.New("web: store, loader and state are required")
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 10 << 20
	}
	return &Server{
		store:     opts.Store,
		loader:    opts.Loader,
		state:     opts.State,
		metrics:   opts.Metrics,
		log:       opts.Log.With().Str("component", "web").Logger(),
		source:    opts.Source,
		maxUpload: maxUpload,
		origins:   opts.CORSOrigins,
		tmpl:      tmpl,
	}, nil
}

// loadStatus maps a failed load to the HTTP status shown with the banner.
func loadStatus(err error) int {
	switch ingest.PhaseOf(err) {
	case ingest.PhaseRead:
		return http.StatusBadGateway
	case ingest.PhaseParse:
		return http.StatusUnprocessableEntity
	case ingest.PhaseApply:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
