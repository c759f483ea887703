// Package metrics wraps a tstorage time-series store used for dashboard
// charts and system gauges. Counters are written as individual data points
// and rolled up into day buckets at query time.
package metrics

import (
	"path/filepath"
	"time"

	"github.com/nakabonne/tstorage"
	"go.uber.org/zap"
)

var store tstorage.Storage

// InitMetrics opens the metric store under workdir/metrics.
func InitMetrics(workdir string) error {
	var err error
	store, err = tstorage.NewStorage(
		tstorage.WithDataPath(filepath.Join(workdir, "metrics")),
		tstorage.WithTimestampPrecision(tstorage.Seconds),
		tstorage.WithPartitionDuration(24*time.Hour),
		tstorage.WithRetention(400*24*time.Hour),
	)
	return err
}

// Close flushes and closes the metric store.
func Close() error {
	if store == nil {
		return nil
	}
	return store.Close()
}

// SetGauge records the current value of a gauge metric.
func SetGauge(name string, value int64) {
	insert(name, float64(value))
}

// IncrCounter records a counter increment event.
func IncrCounter(name string, incr int64) {
	insert(name, float64(incr))
}

func insert(name string, value float64) {
	if store == nil {
		return
	}
	err := store.InsertRows([]tstorage.Row{
		{
			Metric:    name,
			DataPoint: tstorage.DataPoint{Timestamp: time.Now().Unix(), Value: value},
		},
	})
	if err != nil {
		zap.S().Warnf("metrics insert failed for %s: %s", name, err.Error())
	}
}

// QueryRange returns the raw data points of a metric between start and end.
func QueryRange(name string, start, end time.Time) ([]*tstorage.DataPoint, error) {
	if store == nil {
		return nil, nil
	}
	points, err := store.Select(name, nil, start.Unix(), end.Unix())
	if err == tstorage.ErrNoDataPoints {
		return nil, nil
	}
	return points, err
}

// DailyTotals sums a counter metric into day buckets keyed by "2006-01-02".
func DailyTotals(name string, start, end time.Time) (map[string]float64, error) {
	points, err := QueryRange(name, start, end)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]float64)
	for _, p := range points {
		day := time.Unix(p.Timestamp, 0).Format("2006-01-02")
		totals[day] += p.Value
	}
	return totals, nil
}
