package pathops

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"pathops/internal/inkscape"
	"pathops/internal/svg"
)

// Selection errors, reported to the user without touching the
// document.
var (
	ErrTooFewSelected  = errors.New("this operation requires 2 or more selected items")
	ErrNothingOperable = errors.New("the selection contains no operable paths or shapes")
)

// Request describes one apply run.
type Request struct {
	// File is the source SVG document.
	File string

	// Out is where the result is written. Empty means overwrite File.
	Out string

	// SelectIDs are the selected root element ids. Empty selects every
	// top-level element of the document.
	SelectIDs []string

	// Operation is the boolean operation to apply.
	Operation Operation

	// MaxCount caps the operations per editor invocation.
	MaxCount int

	// Recursive descends into nested groups without limit; otherwise
	// only one group level is considered.
	Recursive bool

	// DryRun reports the constructed invocations without executing
	// anything or touching any file.
	DryRun bool

	// Binary is the editor executable.
	Binary string

	// Timeout bounds each editor invocation. Zero means no limit.
	Timeout time.Duration
}

// Outcome reports what a run did (or, under DryRun, would do).
type Outcome struct {
	Top         string
	Operands    []string
	Batches     [][]string
	Commands    []inkscape.Command
	WorkingFile string
	Out         string
}

// Processor orchestrates one apply run: resolve the selection, order
// it, and drive the editor batch by batch over a working copy.
type Processor struct {
	runner inkscape.Runner
	logger *zap.Logger
}

// NewProcessor returns a processor using the given runner.
func NewProcessor(runner inkscape.Runner, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{runner: runner, logger: logger}
}

// Apply runs the requested operation. Batches execute strictly in
// sequence: every invocation rewrites the same working copy, so a
// later batch must see the file state the earlier one saved. On a
// batch failure the error carries the editor's diagnostics and the
// returned outcome shows how far the run got; no retry, no rollback.
func (p *Processor) Apply(ctx context.Context, req Request) (*Outcome, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}

	doc, err := svg.ParseFile(req.File)
	if err != nil {
		return nil, err
	}

	roots, err := resolveRoots(doc, req.SelectIDs)
	if err != nil {
		return nil, err
	}
	if len(roots) < 2 {
		return nil, ErrTooFewSelected
	}

	ids := svg.Collect(roots, req.Recursive)
	if len(ids) < 2 {
		return nil, ErrNothingOperable
	}

	top, operands, err := svg.SplitTop(doc.Root, ids)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Top:         top,
		Operands:    operands,
		Batches:     Chunk(operands, req.MaxCount),
		WorkingFile: workingPath(req.File),
		Out:         req.Out,
	}

	p.logger.Info("applying path operation",
		zap.String("file", req.File),
		zap.String("operation", string(req.Operation)),
		zap.String("top", top),
		zap.Int("operands", len(operands)),
		zap.Int("batches", len(outcome.Batches)),
		zap.Bool("dry_run", req.DryRun))

	verb := req.Operation.Verb()
	for _, batch := range outcome.Batches {
		outcome.Commands = append(outcome.Commands, inkscape.Command{
			Binary:    req.Binary,
			Arguments: BuildArgs(top, batch, verb, outcome.WorkingFile),
			Timeout:   req.Timeout,
		})
	}

	if req.DryRun {
		return outcome, nil
	}

	if err := copyFile(req.File, outcome.WorkingFile); err != nil {
		return outcome, fmt.Errorf("create working copy: %w", err)
	}

	for i, cmd := range outcome.Commands {
		p.logger.Debug("dispatching batch",
			zap.Int("batch", i+1),
			zap.Int("batches", len(outcome.Commands)),
			zap.Int("size", len(outcome.Batches[i])))
		if _, err := p.runner.Run(ctx, cmd); err != nil {
			return outcome, fmt.Errorf("batch %d of %d: %w", i+1, len(outcome.Commands), err)
		}
	}

	// The editor rewrote the working copy; make sure what came back
	// still parses before replacing the target.
	if _, err := svg.ParseFile(outcome.WorkingFile); err != nil {
		return outcome, fmt.Errorf("editor output unreadable: %w", err)
	}
	if err := copyFile(outcome.WorkingFile, outcome.Out); err != nil {
		return outcome, fmt.Errorf("write result: %w", err)
	}
	cleanup(outcome.WorkingFile)

	return outcome, nil
}

func (req *Request) normalize() error {
	if req.File == "" {
		return fmt.Errorf("no input file given")
	}
	if req.Operation == "" {
		req.Operation = Difference
	}
	if req.MaxCount == 0 {
		req.MaxCount = 500
	}
	if req.MaxCount < 1 {
		return fmt.Errorf("max count must be positive, got %d", req.MaxCount)
	}
	if req.Binary == "" {
		req.Binary = "inkscape"
	}
	if req.Out == "" {
		req.Out = req.File
	}
	return nil
}

// resolveRoots maps the selected ids to elements, or selects every
// top-level element when no ids were given.
func resolveRoots(doc *svg.Document, ids []string) ([]*svg.Element, error) {
	if len(ids) == 0 {
		return doc.Root.Children, nil
	}
	roots := make([]*svg.Element, 0, len(ids))
	for _, id := range ids {
		el := doc.Find(id)
		if el == nil {
			return nil, fmt.Errorf("no element with id %q in %s", id, doc.Path)
		}
		roots = append(roots, el)
	}
	return roots, nil
}

// workingPath names the temporary working copy beside the source
// file: <stem>-pathops.svg.
func workingPath(file string) string {
	stem := strings.TrimSuffix(file, filepath.Ext(file))
	return stem + "-pathops.svg"
}
