package web

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/gyeh/sitecards/internal/ingest"
	"github.com/gyeh/sitecards/internal/prefs"
	"github.com/gyeh/sitecards/internal/sites"
)

func (s *Server) page(r *http.Request) pageData {
	q := r.FormValue("q")
	view := s.state.View()
	if v, err := prefs.ParseViewMode(r.URL.Query().Get("view")); err == nil {
		view = v
	}
	rows, _ := s.store.Snapshot()
	return pageData{
		Theme:   s.state.Theme(),
		View:    view,
		Query:   q,
		Cards:   buildCards(sites.Filter(rows, q)),
		Total:   len(rows),
		Summary: s.store.LastSummary(),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, s.page(r))
}

// handleLoad reloads the configured source.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	if _, err := s.loader.Load(r.Context(), s.source); err != nil {
		s.renderLoadError(w, r, err)
		return
	}
	redirectHome(w, r)
}

// handleUpload loads a sheet sent as the multipart field "file".
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		status := http.StatusBadRequest
		msg := "choose a CSV, XLSX or Parquet file to upload"
		if errors.As(err, &tooBig) {
			status = http.StatusRequestEntityTooLarge
			msg = "upload is too large"
		}
		data := s.page(r)
		data.Error = msg
		s.render(w, status, data)
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		s.renderLoadError(w, r, &ingest.PipelineError{Phase: ingest.PhaseRead, Err: err})
		return
	}

	src := ingest.Source{Name: filepath.Base(header.Filename), Data: body}
	if _, err := s.loader.Load(r.Context(), src); err != nil {
		s.renderLoadError(w, r, err)
		return
	}
	redirectHome(w, r)
}

// renderLoadError shows the current cards with an error banner. The record
// set is untouched by a failed load.
func (s *Server) renderLoadError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Warn().Err(err).Str("phase", ingest.PhaseOf(err)).Msg("load request failed")
	data := s.page(r)
	data.Error = "Could not load sites: " + err.Error()
	s.render(w, loadStatus(err), data)
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	var err error
	if t := r.FormValue("theme"); t != "" {
		theme, perr := prefs.ParseTheme(t)
		if perr != nil {
			http.Error(w, perr.Error(), http.StatusBadRequest)
			return
		}
		err = s.state.SetTheme(r.Context(), theme)
	} else {
		_, err = s.state.ToggleTheme(r.Context())
	}
	if err != nil {
		s.log.Error().Err(err).Msg("theme change failed")
		data := s.page(r)
		data.Error = "Could not save theme preference."
		s.render(w, http.StatusInternalServerError, data)
		return
	}
	s.metrics.IncrementThemeToggle()
	redirectHome(w, r)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	mode, err := prefs.ParseViewMode(r.FormValue("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.state.SetView(mode)
	redirectHome(w, r)
}

// redirectHome sends the browser back to the card page, keeping the search.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	target := "/"
	if q := r.FormValue("q"); q != "" {
		target += "?" + url.Values{"q": {q}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
