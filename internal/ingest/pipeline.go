package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/sitecards/internal/metrics"
	"github.com/gyeh/sitecards/internal/model"
	"github.com/gyeh/sitecards/internal/normalize"
	"github.com/gyeh/sitecards/internal/sites"
)

// Pipeline phases, in order.
const (
	PhaseRead     = "read"
	PhaseParse    = "parse"
	PhaseSanitize = "sanitize"
	PhaseApply    = "apply"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// PhaseOf returns the phase of a PipelineError anywhere in err's chain, or "".
func PhaseOf(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Phase
	}
	return ""
}

// SourceKind labels where a load came from.
type SourceKind string

const (
	KindFile   SourceKind = "file"
	KindURL    SourceKind = "url"
	KindUpload SourceKind = "upload"
)

// Source describes one load. Exactly one of Path, URL or Data is used, in
// that order of preference: Data, URL, Path.
type Source struct {
	Name string
	Path string
	URL  string
	Data []byte

	// SkipUnchanged leaves the record set alone when the content hash matches
	// the applied load. File watchers set it; repeated write events for one
	// save would otherwise reload the same bytes.
	SkipUnchanged bool
}

// SourceFromLocation builds a Source from a configured path or http(s) URL.
func SourceFromLocation(loc string) Source {
	if isURL(loc) {
		return Source{Name: loc, URL: loc}
	}
	return Source{Name: filepath.Base(loc), Path: loc}
}

func (s Source) kind() SourceKind {
	switch {
	case s.Data != nil:
		return KindUpload
	case s.URL != "":
		return KindURL
	default:
		return KindFile
	}
}

func (s Source) label() string {
	if s.Name != "" {
		return s.Name
	}
	if s.URL != "" {
		return s.URL
	}
	return s.Path
}

// Loader runs loads into a sites.Store. It is safe for concurrent use; the
// store's generations decide which result wins.
type Loader struct {
	store   *sites.Store
	fetcher *Fetcher
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewLoader(store *sites.Store, fetcher *Fetcher, m *metrics.Metrics, log zerolog.Logger) *Loader {
	if fetcher == nil {
		fetcher = NewFetcher(30 * time.Second)
	}
	return &Loader{store: store, fetcher: fetcher, metrics: m, log: log.With().Str("component", "loader").Logger()}
}

// Load executes read → parse → sanitize → apply. On failure the current
// record set is left untouched and a *PipelineError is returned. A load that
// finishes after a newer one has applied returns a summary with Applied false.
func (l *Loader) Load(ctx context.Context, src Source) (*model.LoadSummary, error) {
	totalStart := time.Now()
	gen := l.store.Begin()
	kind := string(src.kind())
	log := l.log.With().Uint64("generation", gen).Str("source", src.label()).Logger()

	fail := func(phase string, err error) (*model.LoadSummary, error) {
		l.metrics.IncrementLoadFailure(kind, phase)
		log.Error().Err(err).Str("phase", phase).Msg("load failed")
		return nil, &PipelineError{Phase: phase, Err: err}
	}

	// Phase 1: Read
	readStart := time.Now()
	data, err := l.read(ctx, src)
	if err != nil {
		return fail(PhaseRead, err)
	}
	durRead := time.Since(readStart)
	sha := normalize.BytesHash(data)

	if src.SkipUnchanged {
		if last := l.store.LastSummary(); last != nil && last.SourceSHA256 == sha {
			log.Debug().Str("sha256", sha).Msg("source unchanged, skipping")
			l.metrics.ObserveLoad(kind, "unchanged", time.Since(totalStart))
			return &model.LoadSummary{
				LoadID:        uuid.NewString(),
				Generation:    gen,
				Source:        src.label(),
				SourceSHA256:  sha,
				Unchanged:     true,
				LoadedAt:      time.Now().UTC(),
				DurationRead:  durRead,
				DurationTotal: time.Since(totalStart),
			}, nil
		}
	}

	// Phase 2: Parse
	parseStart := time.Now()
	table, err := Decode(src.label(), data)
	if err != nil {
		return fail(PhaseParse, err)
	}
	durParse := time.Since(parseStart)
	if len(table.IgnoredColumns) > 0 {
		log.Debug().Strs("columns", table.IgnoredColumns).Msg("ignoring unknown columns")
	}

	// Phase 3: Sanitize
	kept, dropped := sites.Sanitize(table.Rows)
	l.metrics.AddDropped(dropped)
	if dropped > 0 {
		log.Warn().Int("rows_dropped", dropped).Msg("dropped rows without nickname or official name")
	}

	// Phase 4: Apply
	if err := ctx.Err(); err != nil {
		return fail(PhaseApply, err)
	}
	summary := &model.LoadSummary{
		LoadID:         uuid.NewString(),
		Generation:     gen,
		Source:         src.label(),
		SourceSHA256:   sha,
		RowsRead:       len(table.Rows),
		RowsKept:       len(kept),
		RowsDropped:    dropped,
		IgnoredColumns: table.IgnoredColumns,
		LoadedAt:       time.Now().UTC(),
		DurationRead:   durRead,
		DurationParse:  durParse,
	}
	summary.DurationTotal = time.Since(totalStart)

	if !l.store.Commit(gen, kept, summary) {
		l.metrics.ObserveLoad(kind, "stale", summary.DurationTotal)
		log.Warn().Msg("newer load already applied, discarding result")
		return summary, nil
	}
	l.metrics.ObserveLoad(kind, "applied", summary.DurationTotal)
	l.metrics.SetRecordSetSize(len(kept))

	log.Info().
		Str("load_id", summary.LoadID).
		Int("rows_read", summary.RowsRead).
		Int("rows_kept", summary.RowsKept).
		Int("rows_dropped", summary.RowsDropped).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load complete")

	return summary, nil
}

func (l *Loader) read(ctx context.Context, src Source) ([]byte, error) {
	switch src.kind() {
	case KindUpload:
		return src.Data, nil
	case KindURL:
		return l.fetcher.Fetch(ctx, src.URL)
	default:
		if src.Path == "" {
			return nil, errors.New("no source configured")
		}
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", src.Path, err)
		}
		return data, nil
	}
}

// Plan reads and parses src without touching any record set. It backs the
// dry-run command.
func Plan(ctx context.Context, fetcher *Fetcher, src Source) (*Table, *model.LoadSummary, error) {
	store := sites.NewStore()
	l := NewLoader(store, fetcher, nil, zerolog.Nop())
	summary, err := l.Load(ctx, src)
	if err != nil {
		return nil, nil, err
	}
	rows, _ := store.Snapshot()
	return &Table{Rows: rows, IgnoredColumns: summary.IgnoredColumns}, summary, nil
}

func isURL(loc string) bool {
	return strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://")
}
