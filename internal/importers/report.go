package importers

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// OutcomeKind classifies what happened to one aggregate.
type OutcomeKind string

const (
	OutcomeImported OutcomeKind = "imported"
	OutcomeSkipped  OutcomeKind = "skipped"
	OutcomeErrored  OutcomeKind = "errored"
	OutcomePlanned  OutcomeKind = "planned" // dry run only
)

// Outcome is the result of writing one aggregate.
type Outcome struct {
	Entity      EntityType
	Key         string
	Label       string
	Kind        OutcomeKind
	Err         error
	ChildErrors []error
	Children    int
}

// Partial reports whether the parent was written but some children were not.
func (o Outcome) Partial() bool {
	return o.Kind == OutcomeImported && len(o.ChildErrors) > 0
}

func (o Outcome) describe() string {
	if o.Label == "" || o.Label == o.Key {
		return fmt.Sprintf("%s %q", o.Entity.Keyword(), o.Key)
	}
	return fmt.Sprintf("%s %q (%s)", o.Entity.Keyword(), o.Key, o.Label)
}

// Tally counts outcomes. Partially written entities count as imported and
// are also counted in Partial.
type Tally struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Errored  int `json:"errored"`
	Partial  int `json:"partial"`
	Planned  int `json:"planned,omitempty"`
}

func (t *Tally) add(o Outcome) {
	switch o.Kind {
	case OutcomeImported:
		t.Imported++
		if o.Partial() {
			t.Partial++
		}
	case OutcomeSkipped:
		t.Skipped++
	case OutcomeErrored:
		t.Errored++
	case OutcomePlanned:
		t.Planned++
	}
}

type EntitySummary struct {
	Entity EntityType `json:"entity"`
	Files  []string   `json:"files,omitempty"`
	Tally
}

// Summary describes one import run.
type Summary struct {
	RunID      string          `json:"run_id"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	DryRun     bool            `json:"dry_run"`
	Cleared    bool            `json:"cleared"`
	Entities   []EntitySummary `json:"entities"`
	FileErrors []string        `json:"file_errors,omitempty"`
	Imported   int             `json:"imported"`
	Skipped    int             `json:"skipped"`
	Errored    int             `json:"errored"`
	Planned    int             `json:"planned,omitempty"`
}

// HasErrors reports whether any entity errored or any file could not be read.
func (s Summary) HasErrors() bool {
	return s.Errored > 0 || len(s.FileErrors) > 0
}

// Entity returns the tally for one entity type, zero if it was not imported.
func (s Summary) Entity(entity EntityType) EntitySummary {
	for _, e := range s.Entities {
		if e.Entity == entity {
			return e
		}
	}
	return EntitySummary{Entity: entity}
}

// Reporter prints per-entity markers and tallies while a run progresses and
// accumulates the run Summary.
type Reporter struct {
	out     io.Writer
	summary Summary
}

func NewReporter(out io.Writer, dryRun bool) *Reporter {
	if out == nil {
		out = io.Discard
	}
	return &Reporter{
		out: out,
		summary: Summary{
			RunID:     uuid.NewString(),
			StartedAt: time.Now(),
			DryRun:    dryRun,
		},
	}
}

// Begin announces a source file for an entity type.
func (r *Reporter) Begin(entity EntityType, source string) {
	es := r.entity(entity)
	if source != "" {
		es.Files = append(es.Files, source)
		fmt.Fprintf(r.out, "\n=== Importing %s from %s ===\n", entity, source)
	} else {
		fmt.Fprintf(r.out, "\n=== Importing %s ===\n", entity)
	}
}

// Record counts one outcome and prints its marker line.
func (r *Reporter) Record(o Outcome) {
	r.entity(o.Entity).add(o)

	switch {
	case o.Kind == OutcomeSkipped:
		fmt.Fprintf(r.out, "  [SKIP] %s already exists\n", o.describe())
	case o.Kind == OutcomeErrored:
		fmt.Fprintf(r.out, "  [ERROR] %s: %v\n", o.describe(), o.Err)
	case o.Kind == OutcomePlanned:
		fmt.Fprintf(r.out, "  [DRY] %s would be imported with %d child records\n", o.describe(), o.Children)
	case o.Partial():
		fmt.Fprintf(r.out, "  [PARTIAL] %s imported, %d of %d child records failed\n",
			o.describe(), len(o.ChildErrors), o.Children)
		for _, err := range o.ChildErrors {
			fmt.Fprintf(r.out, "    - %v\n", err)
		}
	default:
		fmt.Fprintf(r.out, "  [OK] %s\n", o.describe())
	}
}

// FileError records a file that could not be read or parsed.
func (r *Reporter) FileError(path string, err error) {
	msg := fmt.Sprintf("%s: %v", path, err)
	r.summary.FileErrors = append(r.summary.FileErrors, msg)
	fmt.Fprintf(r.out, "  [ERROR] %s\n", msg)
}

// Cleared notes that existing records were wiped before the run.
func (r *Reporter) Cleared() {
	r.summary.Cleared = true
	if r.summary.DryRun {
		fmt.Fprintln(r.out, "DRY RUN: existing records would be cleared")
		return
	}
	fmt.Fprintln(r.out, "Cleared all existing records")
}

// EndEntity prints the tally for one entity type.
func (r *Reporter) EndEntity(entity EntityType) {
	t := r.entity(entity).Tally
	fmt.Fprintf(r.out, "%s: %s\n", entity, formatTally(t, r.summary.DryRun))
}

// Finish stamps the end time and totals and returns the run summary.
func (r *Reporter) Finish() Summary {
	r.summary.FinishedAt = time.Now()
	r.summary.Imported, r.summary.Skipped, r.summary.Errored, r.summary.Planned = 0, 0, 0, 0
	for _, e := range r.summary.Entities {
		r.summary.Imported += e.Imported
		r.summary.Skipped += e.Skipped
		r.summary.Errored += e.Errored
		r.summary.Planned += e.Planned
	}
	return r.Summary()
}

// Summary returns a copy of the summary accumulated so far.
func (r *Reporter) Summary() Summary {
	s := r.summary
	s.Entities = append([]EntitySummary(nil), r.summary.Entities...)
	s.FileErrors = append([]string(nil), r.summary.FileErrors...)
	return s
}

// PrintSummary prints the grand total for the run.
func (r *Reporter) PrintSummary() {
	s := r.summary
	fmt.Fprintln(r.out, "\n=== Import Summary ===")
	if s.DryRun {
		fmt.Fprintln(r.out, "DRY RUN MODE - No changes were made")
	}
	for _, e := range s.Entities {
		fmt.Fprintf(r.out, "%-10s %s\n", e.Entity, formatTally(e.Tally, s.DryRun))
	}
	if s.DryRun {
		fmt.Fprintf(r.out, "Total: %d would be imported\n", s.Planned)
	} else {
		fmt.Fprintf(r.out, "Total: %d imported, %d skipped, %d errored\n", s.Imported, s.Skipped, s.Errored)
	}
	if len(s.FileErrors) > 0 {
		fmt.Fprintf(r.out, "\n%d files could not be read:\n", len(s.FileErrors))
		for _, msg := range s.FileErrors {
			fmt.Fprintf(r.out, "  [ERROR] %s\n", msg)
		}
	}
	fmt.Fprintf(r.out, "Duration: %s\n", s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond))
}

func (r *Reporter) entity(entity EntityType) *EntitySummary {
	for i := range r.summary.Entities {
		if r.summary.Entities[i].Entity == entity {
			return &r.summary.Entities[i]
		}
	}
	r.summary.Entities = append(r.summary.Entities, EntitySummary{Entity: entity})
	return &r.summary.Entities[len(r.summary.Entities)-1]
}

func formatTally(t Tally, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("%d would be imported", t.Planned)
	}
	s := fmt.Sprintf("%d imported, %d skipped, %d errored", t.Imported, t.Skipped, t.Errored)
	if t.Partial > 0 {
		s += fmt.Sprintf(" (%d partially written)", t.Partial)
	}
	return s
}
