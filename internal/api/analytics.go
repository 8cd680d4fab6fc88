package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/priyakanmani/smartcart-client-go/internal/api/dto"
)

// TimeRange selects the grouping of a sales query and implies its date
// window.
type TimeRange string

const (
	RangeDay   TimeRange = "day"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
)

// window is the queried period for a range: last seven days for daily
// grouping, last thirty for weekly, last six months for monthly.
func (r TimeRange) window(now time.Time) (start, end string) {
	from := now
	switch r {
	case RangeWeek:
		from = now.AddDate(0, 0, -30)
	case RangeMonth:
		from = now.AddDate(0, -6, 0)
	default:
		from = now.AddDate(0, 0, -7)
	}
	const layout = "2006-01-02"
	return from.Format(layout), now.Format(layout)
}

// SampleDataNotice is shown alongside any degraded result.
const SampleDataNotice = "Using sample data. Real data will appear when you have sales records."

// SalesResult distinguishes live data from the deterministic sample series
// substituted when a query fails, so callers can branch on Degraded instead
// of sniffing a message string.
type SalesResult struct {
	Points   []dto.SalesPoint
	Degraded bool
	Notice   string
}

type TopProductsResult struct {
	Products []dto.TopProduct
	Degraded bool
	Notice   string
}

type CategorySalesResult struct {
	Categories []dto.CategorySales
	Degraded   bool
	Notice     string
}

// AnalyticsClient covers the read-only sales queries. These are the only
// endpoints with partial-failure tolerance designed in: anything but an
// authentication failure degrades to sample data instead of erroring.
type AnalyticsClient struct {
	c   *Client
	now func() time.Time
}

func NewAnalyticsClient(c *Client) *AnalyticsClient {
	return &AnalyticsClient{c: c, now: time.Now}
}

func (a *AnalyticsClient) Sales(ctx context.Context, shopID string, rng TimeRange) (SalesResult, error) {
	start, end := rng.window(a.now())
	q := url.Values{
		"shop":      {shopID},
		"startDate": {start},
		"endDate":   {end},
		"groupBy":   {string(rng)},
	}

	var points []dto.SalesPoint
	err := a.c.do(ctx, http.MethodGet, "/api/sales/analytics", q.Encode(), nil, &points)
	if err == nil {
		return SalesResult{Points: points}, nil
	}
	if errors.Is(err, ErrUnauthorized) {
		return SalesResult{}, err
	}
	return SalesResult{Points: sampleSales(rng), Degraded: true, Notice: SampleDataNotice}, nil
}

func (a *AnalyticsClient) TopProducts(ctx context.Context, shopID string, limit int) (TopProductsResult, error) {
	q := url.Values{"shop": {shopID}, "limit": {strconv.Itoa(limit)}}

	var products []dto.TopProduct
	err := a.c.do(ctx, http.MethodGet, "/api/products/top-selling", q.Encode(), nil, &products)
	if err == nil {
		return TopProductsResult{Products: products}, nil
	}
	if errors.Is(err, ErrUnauthorized) {
		return TopProductsResult{}, err
	}
	return TopProductsResult{Products: sampleTopProducts(), Degraded: true, Notice: SampleDataNotice}, nil
}

func (a *AnalyticsClient) SalesByCategory(ctx context.Context, shopID string) (CategorySalesResult, error) {
	q := url.Values{"shop": {shopID}}

	var categories []dto.CategorySales
	err := a.c.do(ctx, http.MethodGet, "/api/sales/by-category", q.Encode(), nil, &categories)
	if err == nil {
		return CategorySalesResult{Categories: categories}, nil
	}
	if errors.Is(err, ErrUnauthorized) {
		return CategorySalesResult{}, err
	}
	return CategorySalesResult{Categories: sampleCategorySales(), Degraded: true, Notice: SampleDataNotice}, nil
}
