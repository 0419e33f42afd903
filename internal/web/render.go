package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gyeh/sitecards/internal/model"
	"github.com/gyeh/sitecards/internal/normalize"
	"github.com/gyeh/sitecards/internal/prefs"
)

//go:embed templates/*.html static/*
var assets embed.FS

// iconView is the data behind one icon in the icon lane.
type iconView struct {
	Name  string
	Title string
	Tone  model.Tone
	Muted bool
	Stack []string
}

// cardView carries the raw row, for verbatim tooltips and chips, alongside
// its normalized descriptor.
type cardView struct {
	Row *model.SiteRow
	model.Descriptor
}

type pageData struct {
	Theme   prefs.Theme
	View    prefs.ViewMode
	Query   string
	Cards   []cardView
	Total   int
	Summary *model.LoadSummary
	Error   string
}

var templateFuncs = template.FuncMap{
	"icon": func(name, title string, tone model.Tone, muted bool, stack []string) iconView {
		return iconView{Name: name, Title: title, Tone: tone, Muted: muted, Stack: stack}
	},
	"join": strings.Join,
	"yesNo": func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	},
	"categoryClass": func(c model.CategoryClass) string {
		return "cat-" + string(c)
	},
}

func parseTemplates() (*template.Template, error) {
	t, err := template.New("").Funcs(templateFuncs).ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

func buildCards(rows []model.SiteRow) []cardView {
	cards := make([]cardView, len(rows))
	for i := range rows {
		cards[i] = cardView{Row: &rows[i], Descriptor: normalize.Describe(&rows[i])}
	}
	return cards
}

// render executes the page template into a buffer first so a template error
// never leaves a half-written response.
func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		s.log.Error().Err(err).Msg("render page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
