package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/server/api/gwp/avg", "/server/api/gwp/avg"},
		{"/api/gwp/countries.json", "/api/gwp/countries.json"},
		{"/api/gwp/lines-of-business/ae.json", "/api/gwp/lines-of-business/:country"},
		{"/api/gwp/lines-of-business/dz", "/api/gwp/lines-of-business/:country"},
		{"/healthz", "/healthz"},
		{"/wp-admin/login.php", "other"},
		{"/", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, canonicalPath(tt.path))
		})
	}
}

func TestInstrumentHandler(t *testing.T) {
	handler := InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	counter := httpRequests.WithLabelValues("GET", "/healthz", "418")
	before := testutil.ToFloat64(counter)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpInFlight))
}

func TestRecordAverageQuery(t *testing.T) {
	queriesBefore := testutil.ToFloat64(averageQueries)
	matchedBefore := testutil.ToFloat64(linesOfBusinessRequested.WithLabelValues("true"))
	unmatchedBefore := testutil.ToFloat64(linesOfBusinessRequested.WithLabelValues("false"))

	RecordAverageQuery(2, 1)

	assert.Equal(t, queriesBefore+1, testutil.ToFloat64(averageQueries))
	assert.Equal(t, matchedBefore+2, testutil.ToFloat64(linesOfBusinessRequested.WithLabelValues("true")))
	assert.Equal(t, unmatchedBefore+1, testutil.ToFloat64(linesOfBusinessRequested.WithLabelValues("false")))
}

func TestHandlerExposesDatasetGauges(t *testing.T) {
	SetDatasetStats(6, 1, 2)

	server := httptest.NewServer(Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "gwp_dataset_records 6")
	assert.Contains(t, string(body), "gwp_dataset_rows_skipped 1")
	assert.Contains(t, string(body), "gwp_dataset_cells_defaulted 2")
}
