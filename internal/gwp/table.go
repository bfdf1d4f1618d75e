package gwp

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/vanshverma888/Galytix/internal/logging"
)

// Table is the immutable in-memory dataset. It is built once by Load or Parse
// and only read afterwards, so it is safe to share between goroutines.
type Table struct {
	records []Record
	// lowercased country -> line of business -> index into records
	index     map[string]map[string]int
	countries []string
	stats     LoadStats
}

func newTable(records []Record, stats LoadStats) *Table {
	t := &Table{
		records: records,
		index:   make(map[string]map[string]int),
		stats:   stats,
	}

	for i, r := range records {
		key := countryKey(r.Country)
		byLob, ok := t.index[key]
		if !ok {
			byLob = make(map[string]int)
			t.index[key] = byLob
			t.countries = append(t.countries, r.Country)
		}
		// First occurrence in file order wins.
		if _, exists := byLob[r.LineOfBusiness]; !exists {
			byLob[r.LineOfBusiness] = i
		}
	}
	sort.Strings(t.countries)

	return t
}

func countryKey(country string) string {
	return strings.ToLower(strings.TrimSpace(country))
}

// Len returns the number of records loaded, duplicates included.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of the loaded records in file order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Countries returns the distinct countries in the dataset, spelled as first seen.
func (t *Table) Countries() []string {
	out := make([]string, len(t.countries))
	copy(out, t.countries)
	return out
}

// LinesOfBusiness returns the sorted lines of business indexed for a country.
func (t *Table) LinesOfBusiness(country string) []string {
	byLob := t.index[countryKey(country)]
	out := make([]string, 0, len(byLob))
	for lob := range byLob {
		out = append(out, lob)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the record indexed under (country, lob).
func (t *Table) Lookup(country, lineOfBusiness string) (Record, bool) {
	i, ok := t.index[countryKey(country)][lineOfBusiness]
	if !ok {
		return Record{}, false
	}
	return t.records[i], true
}

func (t *Table) Stats() LoadStats {
	return t.stats
}

// LogStatistics logs a summary of the load.
func (t *Table) LogStatistics(logger *slog.Logger) {
	logging.LogOperation(logger, "dataset_loaded",
		slog.String("source", t.stats.Source),
		slog.Int("rows_read", t.stats.RowsRead),
		slog.Int("records_loaded", t.stats.RecordsLoaded),
		slog.Int("rows_skipped", t.stats.RowsSkipped),
		slog.Int("cells_defaulted", t.stats.CellsDefaulted),
		slog.Int("countries", len(t.countries)),
		slog.Duration("duration", t.stats.Duration))
}
