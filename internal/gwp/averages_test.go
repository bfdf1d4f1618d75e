package gwp

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "empty", values: nil, expected: 0},
		{name: "all zero", values: []float64{0, 0, 0}, expected: 0},
		{name: "all negative", values: []float64{-1, -2.5}, expected: 0},
		{name: "single positive", values: []float64{42}, expected: 42},
		{name: "ignores non-positive values", values: []float64{10, 0, -5, 30}, expected: 20},
		{name: "fractional", values: []float64{0.1, 0.2}, expected: 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Average(tt.values), 1e-9)
		})
	}
}

func TestAveragesEndToEnd(t *testing.T) {
	table := loadFixture(t)

	result := table.Averages("ae", []string{"property", "transport"})

	require.Len(t, result, 2)
	// Mean of the eight positive values in each row.
	assert.InDelta(t, 576967890.25, result["property"], 0.01)
	assert.InDelta(t, 278425367.5, result["transport"], 0.01)
}

func TestAverages(t *testing.T) {
	table := loadFixture(t)

	t.Run("country matching ignores case", func(t *testing.T) {
		lobs := []string{"property", "transport", "marine"}
		assert.Equal(t, table.Averages("ae", lobs), table.Averages("AE", lobs))
		assert.Equal(t, table.Averages("ae", lobs), table.Averages(" Ae ", lobs))
	})

	t.Run("line of business matching is exact", func(t *testing.T) {
		result := table.Averages("ae", []string{"Property", "TRANSPORT"})
		assert.Equal(t, map[string]float64{"Property": 0, "TRANSPORT": 0}, result)
	})

	t.Run("unknown country yields zero for every line of business", func(t *testing.T) {
		result := table.Averages("zz", []string{"property", "transport"})
		assert.Equal(t, map[string]float64{"property": 0, "transport": 0}, result)
	})

	t.Run("unknown line of business yields zero", func(t *testing.T) {
		result := table.Averages("ae", []string{"aviation"})
		assert.Equal(t, map[string]float64{"aviation": 0}, result)
	})

	t.Run("record without positive values yields zero", func(t *testing.T) {
		result := table.Averages("ae", []string{"marine"})
		assert.Equal(t, map[string]float64{"marine": 0}, result)
	})

	t.Run("first duplicate row wins", func(t *testing.T) {
		result := table.Averages("ae", []string{"property"})
		assert.InDelta(t, 576967890.25, result["property"], 0.01)
	})

	t.Run("defaulted and negative cells are excluded", func(t *testing.T) {
		result := table.Averages("dz", []string{"liability", "motor"})
		assert.InDelta(t, 20.0, result["liability"], 1e-9)
		assert.InDelta(t, 2000.0, result["motor"], 1e-9)
	})

	t.Run("repeated request keys collapse", func(t *testing.T) {
		result := table.Averages("dz", []string{"motor", "motor"})
		assert.Len(t, result, 1)
	})

	t.Run("empty request yields empty result", func(t *testing.T) {
		result := table.Averages("ae", nil)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestAveragesConcurrentReads(t *testing.T) {
	table := loadFixture(t)
	expected := table.Averages("ae", []string{"property", "transport", "marine"})

	const goroutines = 50
	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := table.Averages("AE", []string{"property", "transport", "marine"})
				for lob, want := range expected {
					if got[lob] != want {
						errs <- fmt.Errorf("%s: got %v, want %v", lob, got[lob], want)
						return
					}
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
