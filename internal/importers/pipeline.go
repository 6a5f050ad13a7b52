package importers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// RunOptions configures one directory import.
type RunOptions struct {
	Dir    string
	Clear  bool
	DryRun bool
}

// Pipeline handles the common import workflow:
// parse → group by natural key → map → write → report.
//
// Runs are serialised: a CLI run, a queued task and an HTTP upload never
// interleave their writes.
type Pipeline struct {
	writer  *Writer
	clearer Clearer
	out     io.Writer
	log     *zap.Logger
	mu      sync.Mutex
}

// NewPipeline creates a pipeline. clearer may be nil when Clear is never requested;
// out receives the human-readable progress report.
func NewPipeline(writer *Writer, clearer Clearer, out io.Writer, log *zap.Logger) *Pipeline {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{writer: writer, clearer: clearer, out: out, log: log}
}

// pendingWrite is one built aggregate waiting to be written.
type pendingWrite struct {
	planned Outcome
	write   func(ctx context.Context) Outcome
}

// Run imports every recognised CSV file in opts.Dir, entity types in
// dependency order. Per-entity failures are counted, not returned; the
// error is reserved for problems that stop the run as a whole.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (Summary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	files, err := DiscoverFiles(opts.Dir)
	if err != nil {
		return Summary{}, err
	}

	rep := NewReporter(p.out, opts.DryRun)
	log := p.log.With(zap.String("run_id", rep.summary.RunID))
	log.Info("import run started",
		zap.String("dir", opts.Dir),
		zap.Bool("clear", opts.Clear),
		zap.Bool("dry_run", opts.DryRun),
		zap.String("mode", p.writer.Mode().String()),
	)

	if opts.DryRun {
		fmt.Fprintln(p.out, "DRY RUN MODE - No changes will be made")
	}

	if opts.Clear {
		if !opts.DryRun {
			if p.clearer == nil {
				return rep.Finish(), fmt.Errorf("clear requested but no clearer configured")
			}
			if err := p.clearer.Clear(ctx); err != nil {
				return rep.Finish(), fmt.Errorf("failed to clear existing records: %w", err)
			}
			log.Warn("cleared all existing records")
		}
		rep.Cleared()
	}

	if len(files) == 0 {
		fmt.Fprintf(p.out, "No import files found in %s\n", opts.Dir)
	}

	for _, entity := range EntityOrder {
		paths := files[entity]
		if len(paths) == 0 {
			continue
		}
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return rep.Finish(), err
			}
			rep.Begin(entity, filepath.Base(path))
			rows, err := readFile(path)
			if err != nil {
				log.Error("failed to read import file", zap.String("path", path), zap.Error(err))
				rep.FileError(path, err)
				continue
			}
			if err := p.importRows(ctx, entity, rows, rep, opts.DryRun); err != nil {
				return rep.Finish(), err
			}
		}
		rep.EndEntity(entity)
	}

	summary := rep.Finish()
	rep.PrintSummary()
	log.Info("import run finished",
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped),
		zap.Int("errored", summary.Errored),
	)
	return summary, nil
}

// ImportFile imports a single CSV stream of one entity type.
func (p *Pipeline) ImportFile(ctx context.Context, entity EntityType, r io.Reader) (Summary, error) {
	rows, err := ParseCSV(r)
	if err != nil {
		return Summary{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	rep := NewReporter(p.out, false)
	rep.Begin(entity, "")
	if err := p.importRows(ctx, entity, rows, rep, false); err != nil {
		return rep.Finish(), err
	}
	rep.EndEntity(entity)

	summary := rep.Finish()
	p.log.Info("file import finished",
		zap.String("run_id", summary.RunID),
		zap.String("entity", string(entity)),
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped),
		zap.Int("errored", summary.Errored),
	)
	return summary, nil
}

func readFile(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// importRows builds and writes the aggregates of one entity type, one at a time.
// It only returns an error when ctx is cancelled.
func (p *Pipeline) importRows(ctx context.Context, entity EntityType, rows []RawRow, rep *Reporter, dryRun bool) error {
	pending, err := p.prepare(entity, rows)
	if err != nil {
		return err
	}
	for _, pw := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}
		if dryRun {
			o := pw.planned
			o.Kind = OutcomePlanned
			rep.Record(o)
			continue
		}
		rep.Record(pw.write(ctx))
	}
	return nil
}

func (p *Pipeline) prepare(entity EntityType, rows []RawRow) ([]pendingWrite, error) {
	var pending []pendingWrite
	switch entity {
	case EntityProducts:
		for _, product := range BuildProducts(rows) {
			pending = append(pending, pendingWrite{
				planned: productOutcome(product),
				write:   func(ctx context.Context) Outcome { return p.writer.WriteProduct(ctx, product) },
			})
		}
	case EntityCustomers:
		for _, customer := range BuildCustomers(rows) {
			pending = append(pending, pendingWrite{
				planned: customerOutcome(customer),
				write:   func(ctx context.Context) Outcome { return p.writer.WriteCustomer(ctx, customer) },
			})
		}
	case EntityOrders:
		for _, order := range BuildOrders(rows) {
			pending = append(pending, pendingWrite{
				planned: orderOutcome(order),
				write:   func(ctx context.Context) Outcome { return p.writer.WriteOrder(ctx, order) },
			})
		}
	case EntityDiscounts:
		for _, discount := range BuildDiscounts(rows) {
			pending = append(pending, pendingWrite{
				planned: discountOutcome(discount),
				write:   func(ctx context.Context) Outcome { return p.writer.WriteDiscount(ctx, discount) },
			})
		}
	default:
		return nil, fmt.Errorf("unknown entity type %q", entity)
	}
	return pending, nil
}
