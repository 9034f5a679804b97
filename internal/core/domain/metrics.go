package domain

import (
	"errors"
	"time"
)

// MetricKey names one of the six weekly counters. The JSON form matches the
// keys the dashboard sends (camelCase).
type MetricKey string

const (
	// Activity counters.
	MetricDealerAudits       MetricKey = "dealerAudits"
	MetricHOASurveys         MetricKey = "hoaSurveys"
	MetricIndustrialMeetings MetricKey = "industrialMeetings"

	// Outcome counters.
	MetricDealerConversions MetricKey = "dealerConversions"
	MetricNewRefillStations MetricKey = "newRefillStations"
	MetricBulkContracts     MetricKey = "bulkContracts"
)

// MetricKeys lists every valid counter name.
var MetricKeys = []MetricKey{
	MetricDealerAudits,
	MetricHOASurveys,
	MetricIndustrialMeetings,
	MetricDealerConversions,
	MetricNewRefillStations,
	MetricBulkContracts,
}

var ErrMetricsNotFound = errors.New("weekly metrics not found")
var ErrInvalidMetricKey = errors.New("invalid metric key")
var ErrNegativeMetricValue = errors.New("metric value must be non-negative")

// Valid reports whether k is one of the six counter names.
func (k MetricKey) Valid() bool {
	for _, known := range MetricKeys {
		if k == known {
			return true
		}
	}
	return false
}

// WeeklyMetrics holds the six per-user counters. Exactly zero or one record
// exists per user; the record is lazily created all-zero on first access.
// Counters are overwritten by name, not incremented; the dashboard sends
// absolute values (last-writer-wins under concurrent sessions).
type WeeklyMetrics struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	DealerAudits       int       `json:"dealerAudits"`
	HOASurveys         int       `json:"hoaSurveys"`
	IndustrialMeetings int       `json:"industrialMeetings"`
	DealerConversions  int       `json:"dealerConversions"`
	NewRefillStations  int       `json:"newRefillStations"`
	BulkContracts      int       `json:"bulkContracts"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Counter returns the value of the named counter.
func (m *WeeklyMetrics) Counter(key MetricKey) int {
	switch key {
	case MetricDealerAudits:
		return m.DealerAudits
	case MetricHOASurveys:
		return m.HOASurveys
	case MetricIndustrialMeetings:
		return m.IndustrialMeetings
	case MetricDealerConversions:
		return m.DealerConversions
	case MetricNewRefillStations:
		return m.NewRefillStations
	case MetricBulkContracts:
		return m.BulkContracts
	}
	return 0
}

// SetCounter overwrites the named counter.
func (m *WeeklyMetrics) SetCounter(key MetricKey, value int) {
	switch key {
	case MetricDealerAudits:
		m.DealerAudits = value
	case MetricHOASurveys:
		m.HOASurveys = value
	case MetricIndustrialMeetings:
		m.IndustrialMeetings = value
	case MetricDealerConversions:
		m.DealerConversions = value
	case MetricNewRefillStations:
		m.NewRefillStations = value
	case MetricBulkContracts:
		m.BulkContracts = value
	}
}

// TotalActivity sums the three activity counters.
func (m *WeeklyMetrics) TotalActivity() int {
	return m.DealerAudits + m.HOASurveys + m.IndustrialMeetings
}

// TotalConversions sums the three outcome counters.
func (m *WeeklyMetrics) TotalConversions() int {
	return m.DealerConversions + m.NewRefillStations + m.BulkContracts
}
