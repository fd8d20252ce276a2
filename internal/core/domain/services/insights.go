package services

import (
	"sort"
	"time"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
)

// Window selects both the aggregation range and the bucket granularity for
// shop insights. Tokens come straight from the HTTP query string; anything
// unrecognized falls back to one day.
type Window int

const (
	Window1h Window = iota
	Window4h
	Window8h
	Window12h
	Window1d
	Window1w
	Window1m
	Window1y
)

// Granularity is the bucket width of an insights series.
type Granularity int

const (
	GranularityMinute Granularity = iota
	GranularityHour
	GranularityDay
	GranularityMonth
)

func getWindowTokens() map[Window]string {
	return map[Window]string{
		Window1h:  "1h",
		Window4h:  "4h",
		Window8h:  "8h",
		Window12h: "12h",
		Window1d:  "1d",
		Window1w:  "1w",
		Window1m:  "1m",
		Window1y:  "1y",
	}
}

// ParseWindow maps a request token onto a Window.
// Unrecognized tokens default to the one-day window rather than failing,
// so a stale or mistyped range still renders a chart.
func ParseWindow(token string) Window {
	for w, t := range getWindowTokens() {
		if t == token {
			return w
		}
	}
	return Window1d
}

// String returns the request token for the window.
func (w Window) String() string {
	if t, ok := getWindowTokens()[w]; ok {
		return t
	}
	return "1d"
}

// Start computes the inclusive lower bound of the window ending at now.
// Calendar windows (1m, 1y) use calendar arithmetic so "one month" means
// the same day of the previous month, not a fixed number of hours.
func (w Window) Start(now time.Time) time.Time {
	switch w {
	case Window1h:
		return now.Add(-time.Hour)
	case Window4h:
		return now.Add(-4 * time.Hour)
	case Window8h:
		return now.Add(-8 * time.Hour)
	case Window12h:
		return now.Add(-12 * time.Hour)
	case Window1w:
		return now.AddDate(0, 0, -7)
	case Window1m:
		return now.AddDate(0, -1, 0)
	case Window1y:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -1)
	}
}

// Granularity returns the bucket width used for the window's series:
// minute for 1h; hour for 4h, 8h, 12h and 1d; day for 1w and 1m; month for 1y.
func (w Window) Granularity() Granularity {
	switch w {
	case Window1h:
		return GranularityMinute
	case Window1w, Window1m:
		return GranularityDay
	case Window1y:
		return GranularityMonth
	default:
		return GranularityHour
	}
}

// Truncate floors a timestamp to the start of its bucket.
// Bucketing is done in UTC so series are stable regardless of server locale.
func (g Granularity) Truncate(t time.Time) time.Time {
	t = t.UTC()
	switch g {
	case GranularityMinute:
		return t.Truncate(time.Minute)
	case GranularityHour:
		return t.Truncate(time.Hour)
	case GranularityDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

// OrderSnapshot is the slice of an order the aggregator needs: when it was
// created, what it cost, and where it is in its lifecycle. Query handlers
// map storage rows into snapshots instead of rehydrating full aggregates.
type OrderSnapshot struct {
	Status    order.Status
	Total     kernel.Money
	CreatedAt time.Time
}

// OrderStats holds the aggregate figures for a set of orders.
type OrderStats struct {
	OrderCount int
	Earnings   kernel.Money
	Completed  int
	Processing int
	Failed     int
}

func (s *OrderStats) observe(o OrderSnapshot) {
	s.OrderCount++
	s.Earnings = s.Earnings.Add(o.Total)

	switch o.Status {
	case order.Completed:
		s.Completed++
	case order.Failed:
		s.Failed++
	default:
		s.Processing++
	}
}

// Bucket is one time slot of an insights series.
type Bucket struct {
	Start time.Time
	OrderStats
}

// ShopInsights is the full answer for a shop insights request: overall
// figures plus a sparse series ordered by ascending bucket start.
//
// Buckets with zero orders are omitted. Chart consumers must handle gaps;
// the alternative of emitting empty buckets makes a 1y/minute abuse case
// unbounded and was rejected.
type ShopInsights struct {
	Totals  OrderStats
	Buckets []Bucket
}

// InsightsAggregator is a domain service that derives time-bucketed
// statistics from a shop's order set. It is a pure function of its inputs:
// callers load the candidate orders and supply the clock.
type InsightsAggregator struct{}

// NewInsightsAggregator creates a new InsightsAggregator instance.
func NewInsightsAggregator() InsightsAggregator {
	return InsightsAggregator{}
}

// Aggregate computes overall stats and the bucketed series for every order
// created inside the window ending at now. Orders outside the window are
// ignored even if the caller passed them, so the series totals always match
// the overall stats.
func (InsightsAggregator) Aggregate(orders []OrderSnapshot, w Window, now time.Time) ShopInsights {
	windowStart := w.Start(now)
	granularity := w.Granularity()

	var totals OrderStats
	buckets := make(map[time.Time]*OrderStats)

	for _, o := range orders {
		if o.CreatedAt.Before(windowStart) {
			continue
		}

		totals.observe(o)

		start := granularity.Truncate(o.CreatedAt)
		stats, ok := buckets[start]
		if !ok {
			stats = &OrderStats{}
			buckets[start] = stats
		}
		stats.observe(o)
	}

	series := make([]Bucket, 0, len(buckets))
	for start, stats := range buckets {
		series = append(series, Bucket{Start: start, OrderStats: *stats})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Start.Before(series[j].Start)
	})

	return ShopInsights{Totals: totals, Buckets: series}
}
