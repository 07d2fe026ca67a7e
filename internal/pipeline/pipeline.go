// =============================================================================
// Corp Summary - Report Pipeline
// =============================================================================
//
// The pipeline runs one report against the loaded employee file.
//
// PROCESSING PIPELINE:
//   1. Load the employee file (once per process)
//   2. Build the department hierarchy, or aggregate salaries by department
//   3. Format and print the report
//   4. For exports, write the formatted table to the export path
//
// Every stage runs to completion before the next begins. Malformed records
// are skipped and logged; a missing source or an unwritable destination
// aborts the run with an error.
//
// =============================================================================

package pipeline

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/corp-summary/internal/config"
	"github.com/ginjaninja78/corp-summary/internal/export"
	"github.com/ginjaninja78/corp-summary/internal/hierarchy"
	"github.com/ginjaninja78/corp-summary/internal/records"
	"github.com/ginjaninja78/corp-summary/internal/report"
	"github.com/ginjaninja78/corp-summary/internal/summary"
	"github.com/ginjaninja78/corp-summary/pkg/utils"
)

// NoDataNotice is printed instead of an empty report.
const NoDataNotice = "No data found."

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one report run.
type Result struct {
	// RunID identifies the run in the logs.
	RunID string

	Kind Kind

	// NoData is true when the report had nothing to show.
	NoData bool

	// Departments is the number of departments in the report.
	Departments int

	// Skipped is the number of records left out of the salary summary.
	Skipped int

	// OutputFile is the exported file, for export runs.
	OutputFile string

	// Replaced is true when the export overwrote an existing file.
	Replaced bool

	Duration time.Duration
}

// =============================================================================
// PIPELINE STRUCTURE
// =============================================================================

// Pipeline produces reports from one employee file.
type Pipeline struct {
	cfg    *config.Config
	fields records.FieldNames
	out    io.Writer
	logger *slog.Logger

	dataset *records.Dataset

	// now is replaceable for deterministic export paths in tests.
	now func() time.Time
}

// New creates a pipeline that prints reports to out.
func New(cfg *config.Config, out io.Writer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg: cfg,
		fields: records.FieldNames{
			Department: cfg.Fields.Department,
			Team:       cfg.Fields.Team,
			Salary:     cfg.Fields.Salary,
		},
		out:    out,
		logger: logger,
		now:    time.Now,
	}
}

// Load reads the configured employee file. It is called once before any
// report runs; Run calls it if needed.
//
// RETURNS:
//   - *records.NotFoundError when the source file does not exist.
//   - *records.DecodeError when the source cannot be decoded.
func (p *Pipeline) Load() error {
	delimiter, err := config.ParseDelimiter(p.cfg.Source.Delimiter)
	if err != nil {
		return fmt.Errorf("invalid source delimiter: %w", err)
	}

	dataset, err := records.Load(p.cfg.Source.Path, records.Options{
		Delimiter: delimiter,
		Sheet:     p.cfg.Source.Sheet,
		Encoding:  p.cfg.Source.Encoding,
	})
	if err != nil {
		return err
	}

	p.logger.Debug("Loaded employee file",
		slog.String("path", p.cfg.Source.Path),
		slog.Int("records", len(dataset.Records)),
		slog.Int("fields", dataset.Header.Len()))

	if missing := dataset.Missing(p.fields.Department, p.fields.Team, p.fields.Salary); len(missing) > 0 && len(dataset.Records) > 0 {
		p.logger.Warn("Employee file lacks configured fields; they read as empty",
			slog.String("path", p.cfg.Source.Path),
			slog.Any("fields", missing),
			slog.Any("available", dataset.Header.Names()))
	}

	p.dataset = dataset
	return nil
}

// Dataset returns the loaded employee file, or nil before Load.
func (p *Pipeline) Dataset() *records.Dataset {
	return p.dataset
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run produces one report.
func (p *Pipeline) Run(kind Kind) (Result, error) {
	startTime := time.Now()
	result := Result{RunID: uuid.New().String(), Kind: kind}
	logger := p.logger.With(slog.String("run_id", result.RunID), slog.String("report", kind.String()))

	if p.dataset == nil {
		if err := p.Load(); err != nil {
			return result, err
		}
	}

	var err error
	switch kind {
	case KindHierarchy:
		err = p.runHierarchy(&result)
	case KindSummary:
		_, err = p.runSummary(&result, logger)
	case KindExport:
		err = p.runExport(&result, logger)
	default:
		err = fmt.Errorf("unknown report kind %d", int(kind))
	}

	result.Duration = time.Since(startTime)
	if err != nil {
		logger.Error("Report failed", slog.String("error", err.Error()))
		return result, err
	}

	logger.Info("Report complete",
		slog.Int("departments", result.Departments),
		slog.Int("skipped_records", result.Skipped),
		slog.Bool("no_data", result.NoData),
		slog.Duration("elapsed", result.Duration))

	return result, nil
}

// runHierarchy prints the department/team tree.
func (p *Pipeline) runHierarchy(result *Result) error {
	tree := hierarchy.Build(p.dataset.Records, p.fields)
	result.Departments = tree.Len()

	return p.print(result, report.RenderHierarchy(p.out, tree))
}

// runSummary aggregates salaries and prints the summary table.
func (p *Pipeline) runSummary(result *Result, logger *slog.Logger) (*report.Table, error) {
	buckets, skipped := summary.Collect(p.dataset.Records, p.fields)
	result.Skipped = len(skipped)

	for _, s := range skipped {
		attrs := []any{slog.Int("line", s.Line)}
		if s.Err != nil {
			attrs = append(attrs, slog.String("department", s.Department), slog.String("reason", s.Err.Error()))
		} else {
			attrs = append(attrs, slog.String("reason", "empty department"))
		}
		logger.Debug("Skipped record", attrs...)
	}

	table := report.Build(buckets.Rows())
	result.Departments = len(table.Rows)

	return table, p.print(result, report.Render(p.out, table))
}

// runExport prints the summary table and writes it to the export path.
// When there is no data, a header-only file is still written.
func (p *Pipeline) runExport(result *Result, logger *slog.Logger) error {
	table, err := p.runSummary(result, logger)
	if err != nil {
		return err
	}

	delimiter, err := config.ParseDelimiter(p.cfg.Export.Delimiter)
	if err != nil {
		return fmt.Errorf("invalid export delimiter: %w", err)
	}

	path := utils.GenerateOutputPath(p.cfg.Export.Path, p.now())
	if !utils.DirExists(path) {
		return &export.WriteError{
			Path: path,
			Err:  fmt.Errorf("destination directory %s is missing or not a directory: %w", filepath.Dir(path), fs.ErrNotExist),
		}
	}
	result.Replaced = utils.FileExists(path)

	opts := export.Options{
		Delimiter: delimiter,
		BOM:       p.cfg.Export.BOM,
		Sheet:     p.cfg.Export.Sheet,
	}
	if err := export.Write(table, path, opts); err != nil {
		return err
	}

	result.OutputFile = path
	logger.Debug("Wrote summary report",
		slog.String("path", path),
		slog.String("format", export.FormatForPath(path).String()),
		slog.Bool("replaced", result.Replaced))

	_, err = fmt.Fprintf(p.out, "Summary report saved to: %s\n", path)
	return err
}

// print turns ErrNoData from a renderer into the no-data notice.
func (p *Pipeline) print(result *Result, renderErr error) error {
	if errors.Is(renderErr, report.ErrNoData) {
		result.NoData = true
		_, err := fmt.Fprintln(p.out, NoDataNotice)
		return err
	}
	return renderErr
}
