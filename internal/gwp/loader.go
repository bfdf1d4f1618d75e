package gwp

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vanshverma888/Galytix/internal/logging"
)

const fieldSeparator = ","

// LoadError reports that the dataset could not be opened or read. The service
// cannot answer anything without its dataset, so callers treat it as fatal.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading GWP dataset: %v", e.Err)
	}
	return fmt.Sprintf("loading GWP dataset %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadStats summarises a dataset load.
type LoadStats struct {
	Source         string
	RowsRead       int
	RecordsLoaded  int
	RowsSkipped    int
	CellsDefaulted int
	Duration       time.Duration
}

// Load reads the dataset at path and builds the lookup table.
func Load(path string, logger *slog.Logger) (*Table, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer logging.SafeCloseWithLogging(f, logger, "close_dataset_file")

	table, loadErr := parse(f, logger)
	if loadErr != nil {
		loadErr.Path = path
		return nil, loadErr
	}

	table.stats.Source = path
	table.stats.Duration = time.Since(start)
	return table, nil
}

// Parse builds a table from dataset content. The first line is a header and
// is discarded without validation.
func Parse(r io.Reader, logger *slog.Logger) (*Table, error) {
	start := time.Now()
	table, err := parse(r, logger)
	if err != nil {
		return nil, err
	}
	table.stats.Duration = time.Since(start)
	return table, nil
}

// parse reports failures as *LoadError so Load can attach the path.
func parse(r io.Reader, logger *slog.Logger) (*Table, *LoadError) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var (
		records []Record
		stats   LoadStats
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		stats.RowsRead++

		fields := strings.Split(scanner.Text(), fieldSeparator)
		if len(fields) < minFields {
			stats.RowsSkipped++
			logger.Debug("skipping malformed dataset row",
				slog.Int("line", lineNo),
				slog.Int("fields", len(fields)),
				slog.Int("required_fields", minFields))
			continue
		}

		record, defaulted := parseRecord(fields)
		for _, year := range defaulted {
			logger.Debug("defaulting unparseable premium to zero",
				slog.Int("line", lineNo),
				slog.Int("year", year))
		}
		stats.CellsDefaulted += len(defaulted)
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("line %d: %w", lineNo+1, err)}
	}

	stats.RecordsLoaded = len(records)
	return newTable(records, stats), nil
}

// parseRecord converts a split row into a Record. It returns the years whose
// non-empty cells failed to parse.
func parseRecord(fields []string) (Record, []int) {
	record := Record{
		Country:        strings.TrimSpace(fields[countryColumn]),
		LineOfBusiness: strings.TrimSpace(fields[lineOfBusinessColumn]),
	}

	var defaulted []int
	for i := 0; i < YearCount; i++ {
		cell := strings.TrimSpace(fields[firstYearColumn+i])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			defaulted = append(defaulted, FirstYear+i)
			continue
		}
		record.YearlyValues[i] = v
	}
	return record, defaulted
}
