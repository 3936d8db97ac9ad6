package introspection

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jasonasher/eosim"
)

func TestStatusEndpointReflectsContext(t *testing.T) {
	ctx := eosim.NewContext()
	_, err := ctx.Schedule(1, func(*eosim.Context) {})
	require.NoError(t, err)

	srv := NewServer(ctx, nil)
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Now                   float64 `json:"now"`
		PendingPlanCount      int     `json:"pendingPlanCount"`
		PendingImmediateCount int     `json:"pendingImmediateCount"`
		Halted                bool    `json:"halted"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.PendingPlanCount)
	require.False(t, body.Halted)
}

func TestContainersEndpointListsTags(t *testing.T) {
	ctx := eosim.NewContext()
	eosim.GetOrInit(ctx, "population", func() *int { v := 0; return &v })

	srv := NewServer(ctx, nil)
	req := httptest.NewRequest(http.MethodGet, "/containers", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var tags []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
	require.Equal(t, []string{"population"}, tags)
}

func TestSubscribersEndpointReportsCounts(t *testing.T) {
	ctx := eosim.NewContext()
	eosim.Subscribe(ctx, "E", eosim.Observer, func(*eosim.Context, int) {})

	srv := NewServer(ctx, nil)
	req := httptest.NewRequest(http.MethodGet, "/subscribers", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]eosim.EventBusStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Equal(t, 1, stats["E"].Observers)
}
