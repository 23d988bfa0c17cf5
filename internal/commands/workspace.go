package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/paylens-dev/paylens/internal/config"
	"github.com/paylens-dev/paylens/internal/gitops"
	"github.com/paylens-dev/paylens/internal/render"
	"github.com/paylens-dev/paylens/internal/runlog"
)

const configFile = "paylens.yaml"

func loadConfig(root string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(root, configFile))
	if err != nil {
		return nil, fmt.Errorf("loading workspace config: %w", err)
	}
	return cfg, nil
}

// datasetPath resolves a configured dataset path against the workspace
// root unless it is absolute.
func datasetPath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// reportOutput carries a finished report to the terminal and, when
// requested, to exports/, the run log, and a git commit.
type reportOutput struct {
	Name     string // report name, also the export file stem
	Header   []string
	Rows     [][]string
	RowsRead int
	Footer   []string // free-form lines printed after the table
}

func (o reportOutput) print(w io.Writer) error {
	if err := render.Table(w, o.Header, o.Rows); err != nil {
		return err
	}
	for _, line := range o.Footer {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// export writes the rows as CSV under exports/, appends a run-log
// entry, and commits both when the config or flag asks for it.
func (o reportOutput) export(root string, cfg *config.Config, commit bool) error {
	dir := filepath.Join(root, "exports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating exports dir: %w", err)
	}

	relPath := filepath.Join("exports", o.Name+".csv")
	f, err := os.Create(filepath.Join(root, relPath))
	if err != nil {
		return fmt.Errorf("creating export: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(o.Header); err != nil {
		return fmt.Errorf("writing export header: %w", err)
	}
	for i, row := range o.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing export row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing export: %w", err)
	}

	entry := runlog.Entry{
		Timestamp: time.Now().UTC(),
		Command:   "report " + o.Name,
		RowsRead:  o.RowsRead,
		RowsOut:   len(o.Rows),
		Export:    relPath,
	}
	if err := runlog.Append(root, []runlog.Entry{entry}); err != nil {
		return fmt.Errorf("appending run log: %w", err)
	}

	if (commit || cfg.Git.AutoCommit) && gitops.IsRepo(root) {
		paths := []string{relPath, filepath.Join("logs", "run-log.csv")}
		if _, err := gitops.CommitPaths(root, "report: export "+o.Name, cfg.Git.AuthorName, cfg.Git.AuthorEmail, paths); err != nil {
			return fmt.Errorf("committing export: %w", err)
		}
	}
	return nil
}
