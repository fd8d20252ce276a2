package services_test

import (
	"testing"
	"time"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
	"printz/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T, total float64, createdAt time.Time, status order.Status) services.OrderSnapshot {
	t.Helper()

	money, err := kernel.MoneyFromFloat(total)
	require.NoError(t, err)

	return services.OrderSnapshot{
		Status:    status,
		Total:     money,
		CreatedAt: createdAt,
	}
}

func TestParseWindow(t *testing.T) {
	t.Run("should parse all known tokens", func(t *testing.T) {
		tokens := map[string]services.Window{
			"1h": services.Window1h, "4h": services.Window4h,
			"8h": services.Window8h, "12h": services.Window12h,
			"1d": services.Window1d, "1w": services.Window1w,
			"1m": services.Window1m, "1y": services.Window1y,
		}
		for token, expected := range tokens {
			assert.Equal(t, expected, services.ParseWindow(token), "token %q", token)
		}
	})

	t.Run("unrecognized tokens default to 1d", func(t *testing.T) {
		for _, token := range []string{"", "2h", "all", "1H"} {
			assert.Equal(t, services.Window1d, services.ParseWindow(token))
		}
	})
}

func TestWindow_Granularity(t *testing.T) {
	cases := map[services.Window]services.Granularity{
		services.Window1h:  services.GranularityMinute,
		services.Window4h:  services.GranularityHour,
		services.Window8h:  services.GranularityHour,
		services.Window12h: services.GranularityHour,
		services.Window1d:  services.GranularityHour,
		services.Window1w:  services.GranularityDay,
		services.Window1m:  services.GranularityDay,
		services.Window1y:  services.GranularityMonth,
	}
	for w, expected := range cases {
		assert.Equal(t, expected, w.Granularity(), "window %s", w)
	}
}

func TestWindow_Start(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(-time.Hour), services.Window1h.Start(now))
	assert.Equal(t, now.AddDate(0, 0, -1), services.Window1d.Start(now))
	assert.Equal(t, now.AddDate(0, 0, -7), services.Window1w.Start(now))
	assert.Equal(t, time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC), services.Window1m.Start(now))
	assert.Equal(t, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), services.Window1y.Start(now))
}

func TestGranularity_Truncate(t *testing.T) {
	ts := time.Date(2025, 3, 15, 14, 37, 42, 123, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 15, 14, 37, 0, 0, time.UTC), services.GranularityMinute.Truncate(ts))
	assert.Equal(t, time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC), services.GranularityHour.Truncate(ts))
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), services.GranularityDay.Truncate(ts))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), services.GranularityMonth.Truncate(ts))
}

func TestInsightsAggregator_Aggregate(t *testing.T) {
	aggregator := services.NewInsightsAggregator()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("zero orders yields zero stats and empty series", func(t *testing.T) {
		insights := aggregator.Aggregate(nil, services.Window1h, now)

		assert.Zero(t, insights.Totals.OrderCount)
		assert.True(t, insights.Totals.Earnings.IsZero())
		assert.Empty(t, insights.Buckets)
	})

	t.Run("orders outside the window are excluded", func(t *testing.T) {
		orders := []services.OrderSnapshot{
			snapshot(t, 10, now.Add(-30*time.Minute), order.Processing),
			snapshot(t, 99, now.Add(-2*time.Hour), order.Completed),
		}

		insights := aggregator.Aggregate(orders, services.Window1h, now)

		assert.Equal(t, 1, insights.Totals.OrderCount)
		expected, _ := kernel.MoneyFromFloat(10)
		assert.True(t, insights.Totals.Earnings.IsEqual(expected))
	})

	t.Run("per-status counts and earnings accumulate", func(t *testing.T) {
		orders := []services.OrderSnapshot{
			snapshot(t, 10, now.Add(-10*time.Minute), order.Completed),
			snapshot(t, 20, now.Add(-10*time.Minute), order.Completed),
			snapshot(t, 30, now.Add(-20*time.Minute), order.Failed),
			snapshot(t, 40, now.Add(-30*time.Minute), order.Processing),
		}

		insights := aggregator.Aggregate(orders, services.Window1h, now)

		assert.Equal(t, 4, insights.Totals.OrderCount)
		assert.Equal(t, 2, insights.Totals.Completed)
		assert.Equal(t, 1, insights.Totals.Failed)
		assert.Equal(t, 1, insights.Totals.Processing)
		expected, _ := kernel.MoneyFromFloat(100)
		assert.True(t, insights.Totals.Earnings.IsEqual(expected))
	})

	t.Run("buckets are sparse and ascending", func(t *testing.T) {
		orders := []services.OrderSnapshot{
			snapshot(t, 10, now.Add(-50*time.Minute), order.Processing),
			snapshot(t, 20, now.Add(-5*time.Minute), order.Processing),
			snapshot(t, 30, now.Add(-5*time.Minute), order.Completed),
		}

		insights := aggregator.Aggregate(orders, services.Window1h, now)

		require.Len(t, insights.Buckets, 2, "minutes with no orders are omitted")
		assert.True(t, insights.Buckets[0].Start.Before(insights.Buckets[1].Start))
		assert.Equal(t, 1, insights.Buckets[0].OrderCount)
		assert.Equal(t, 2, insights.Buckets[1].OrderCount)
	})

	t.Run("bucket stats sum to totals for every window", func(t *testing.T) {
		var orders []services.OrderSnapshot
		statuses := []order.Status{order.Processing, order.Completed, order.Failed}
		for i := 0; i < 50; i++ {
			age := time.Duration(i) * 37 * time.Minute
			orders = append(orders, snapshot(t, float64(i), now.Add(-age), statuses[i%len(statuses)]))
		}

		for token := range map[string]struct{}{
			"1h": {}, "4h": {}, "8h": {}, "12h": {}, "1d": {}, "1w": {}, "1m": {}, "1y": {},
		} {
			w := services.ParseWindow(token)
			insights := aggregator.Aggregate(orders, w, now)

			var count, completed, processing, failed int
			earnings := kernel.ZeroMoney()
			for _, b := range insights.Buckets {
				count += b.OrderCount
				completed += b.Completed
				processing += b.Processing
				failed += b.Failed
				earnings = earnings.Add(b.Earnings)
			}

			assert.Equal(t, insights.Totals.OrderCount, count, "window %s", token)
			assert.Equal(t, insights.Totals.Completed, completed, "window %s", token)
			assert.Equal(t, insights.Totals.Processing, processing, "window %s", token)
			assert.Equal(t, insights.Totals.Failed, failed, "window %s", token)
			assert.True(t, insights.Totals.Earnings.IsEqual(earnings), "window %s", token)
		}
	})
}
