package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type RunConfig struct {
	ID            int
	Strategy      string
	Alpha         float64
	Cutoff        int
	MaxExpansions int
}

type RunRecord struct {
	Config    int // RunConfig.ID
	Outcome   string
	Cost      float64
	Edges     int
	Path      string
	Truncated bool
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the CSV files of one experiment.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRunConfigs(configs []RunConfig) error {
	header := []string{"id", "strategy", "alpha", "cutoff", "max_expansions"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			formatFloat(config.Alpha),
			strconv.Itoa(config.Cutoff),
			strconv.Itoa(config.MaxExpansions),
		})
	}

	if err := w.write("run_configs.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write run configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	header := []string{"config", "outcome", "cost", "edges", "path", "truncated",
		"duration", "generated", "expanded", "max_frontier"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Config),
			record.Outcome,
			formatFloat(record.Cost),
			strconv.Itoa(record.Edges),
			record.Path,
			strconv.FormatBool(record.Truncated),
			record.Duration.String(),
			strconv.Itoa(record.Generated),
			strconv.Itoa(record.Expanded),
			strconv.Itoa(record.MaxFrontier),
		})
	}

	if err := w.write("run_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write run records: %w", err)
	}
	return nil
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, closeErr)
		}
	}()

	return writeCSV(f, header, rows)
}

func writeCSV(out io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
