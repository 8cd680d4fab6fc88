package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
}

func TestSalesQueryWindow(t *testing.T) {
	tests := map[string]struct {
		rng       TimeRange
		wantStart string
	}{
		"day groups over the last week":     {rng: RangeDay, wantStart: "2024-06-08"},
		"week groups over the last month":   {rng: RangeWeek, wantStart: "2024-05-16"},
		"month groups over the last half year": {rng: RangeMonth, wantStart: "2023-12-15"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			srv, reqs := newStubServer(t, http.StatusOK, `[]`)
			a := NewAnalyticsClient(newTestClient(t, srv.URL, nil))
			a.now = fixedNow

			_, err := a.Sales(context.Background(), "SARASU001", tc.rng)
			require.NoError(t, err)

			got := <-reqs
			q, err := url.ParseQuery(got.RawQuery)
			require.NoError(t, err)
			assert.Equal(t, "SARASU001", q.Get("shop"))
			assert.Equal(t, tc.wantStart, q.Get("startDate"))
			assert.Equal(t, "2024-06-15", q.Get("endDate"))
			assert.Equal(t, string(tc.rng), q.Get("groupBy"))
		})
	}
}

func TestSalesLiveDataIsNotDegraded(t *testing.T) {
	srv, _ := newStubServer(t, http.StatusOK,
		`[{"period":"Mon","sales":900,"orders":9,"customers":7,"date":"2024-06-10"}]`)
	a := NewAnalyticsClient(newTestClient(t, srv.URL, nil))

	res, err := a.Sales(context.Background(), "SARASU001", RangeDay)
	require.NoError(t, err)

	assert.False(t, res.Degraded)
	assert.Empty(t, res.Notice)
	require.Len(t, res.Points, 1)
	assert.Equal(t, float64(900), res.Points[0].Sales)
}

func TestSalesFailureDegradesToSampleData(t *testing.T) {
	srv, _ := newStubServer(t, http.StatusInternalServerError, `{"message":"aggregation failed"}`)
	a := NewAnalyticsClient(newTestClient(t, srv.URL, nil))

	res, err := a.Sales(context.Background(), "SARASU001", RangeDay)
	require.NoError(t, err, "degraded mode is not an error")

	assert.True(t, res.Degraded)
	assert.Equal(t, SampleDataNotice, res.Notice)
	require.Len(t, res.Points, 7, "one sample point per weekday")
	assert.Equal(t, "Mon", res.Points[0].Period)
}

func TestSalesNetworkFailureAlsoDegrades(t *testing.T) {
	srv, _ := newStubServer(t, http.StatusOK, `[]`)
	a := NewAnalyticsClient(newTestClient(t, srv.URL, nil))
	srv.Close()

	res, err := a.Sales(context.Background(), "SARASU001", RangeMonth)
	require.NoError(t, err)
	assert.True(t, res.Degraded)
	require.Len(t, res.Points, 4)
	assert.Equal(t, "Jan", res.Points[0].Period)
}

func TestSalesUnauthorizedIsARealError(t *testing.T) {
	srv, _ := newStubServer(t, http.StatusUnauthorized, `{}`)
	tokens := &fakeTokens{token: "stale"}
	a := NewAnalyticsClient(newTestClient(t, srv.URL, tokens))

	_, err := a.Sales(context.Background(), "SARASU001", RangeDay)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, tokens.cleared)
}

func TestTopProductsDegradesToSampleData(t *testing.T) {
	srv, reqs := newStubServer(t, http.StatusNotFound, `{"message":"no sales yet"}`)
	a := NewAnalyticsClient(newTestClient(t, srv.URL, nil))

	res, err := a.TopProducts(context.Background(), "SARASU001", 5)
	require.NoError(t, err)

	got := <-reqs
	assert.Equal(t, "/api/products/top-selling", got.Path)
	q, _ := url.ParseQuery(got.RawQuery)
	assert.Equal(t, "5", q.Get("limit"))

	assert.True(t, res.Degraded)
	require.Len(t, res.Products, 5)
	assert.Equal(t, "Wireless Headphones", res.Products[0].Name)
}

func TestSalesByCategoryDegradesToSampleData(t *testing.T) {
	srv, _ := newStubServer(t, http.StatusBadGateway, ``)
	a := NewAnalyticsClient(newTestClient(t, srv.URL, nil))

	res, err := a.SalesByCategory(context.Background(), "SARASU001")
	require.NoError(t, err)
	assert.True(t, res.Degraded)
	require.Len(t, res.Categories, 5)
	assert.Equal(t, "Electronics", res.Categories[0].Category)
}
