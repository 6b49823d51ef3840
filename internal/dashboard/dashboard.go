// Package dashboard derives the figures shown on the maintenance overview:
// days until next service, upcoming and recent lists, and status counters.
// Every function is pure; the caller supplies the current time.
package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
)

const (
	// UpcomingLimit caps the upcoming-maintenance panel.
	UpcomingLimit = 5
	// RecentLimit caps the recent-activity panel.
	RecentLimit = 5
)

const day = 24 * time.Hour

// UpcomingItem is an equipment record annotated with days until its next maintenance.
type UpcomingItem struct {
	Equipment domain.Equipment
	// DaysUntil is negative when overdue, zero when due today, nil when unscheduled.
	DaysUntil *int
}

// Summary aggregates the dashboard counters and panels.
type Summary struct {
	TotalEquipment int
	GoodCount      int
	WarningCount   int
	TotalLogs      int
	Upcoming       []UpcomingItem
	Recent         []domain.MaintenanceLog
}

// DaysUntilMaintenance returns ceil((next - now) / 24h), or nil when next is nil.
func DaysUntilMaintenance(next *time.Time, now time.Time) *int {
	if next == nil {
		return nil
	}
	days := int(math.Ceil(float64(next.Sub(now)) / float64(day)))
	return &days
}

// Annotate attaches DaysUntil to each record, keeping the input order.
func Annotate(equipment []domain.Equipment, now time.Time) []UpcomingItem {
	items := make([]UpcomingItem, 0, len(equipment))
	for _, eq := range equipment {
		items = append(items, UpcomingItem{
			Equipment: eq,
			DaysUntil: DaysUntilMaintenance(eq.NextMaintenance, now),
		})
	}
	return items
}

// Upcoming keeps records with a scheduled next maintenance, soonest first,
// capped at UpcomingLimit. Ties keep their input order.
func Upcoming(equipment []domain.Equipment, now time.Time) []UpcomingItem {
	scheduled := make([]domain.Equipment, 0, len(equipment))
	for _, eq := range equipment {
		if eq.NextMaintenance != nil {
			scheduled = append(scheduled, eq)
		}
	}

	items := Annotate(scheduled, now)
	sort.SliceStable(items, func(i, j int) bool {
		return derefOrZero(items[i].DaysUntil) < derefOrZero(items[j].DaysUntil)
	})

	if len(items) > UpcomingLimit {
		items = items[:UpcomingLimit]
	}
	return items
}

// RecentActivity returns the newest logs first, capped at RecentLimit.
// The input slice is not modified.
func RecentActivity(logs []domain.MaintenanceLog) []domain.MaintenanceLog {
	sorted := make([]domain.MaintenanceLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > RecentLimit {
		sorted = sorted[:RecentLimit]
	}
	return sorted
}

// Summarize computes every dashboard figure in one pass over the inputs.
func Summarize(equipment []domain.Equipment, logs []domain.MaintenanceLog, now time.Time) Summary {
	s := Summary{
		TotalEquipment: len(equipment),
		TotalLogs:      len(logs),
		Upcoming:       Upcoming(equipment, now),
		Recent:         RecentActivity(logs),
	}
	for _, eq := range equipment {
		switch eq.Status {
		case domain.EquipmentStatusGood:
			s.GoodCount++
		case domain.EquipmentStatusWarning:
			s.WarningCount++
		}
	}
	return s
}

func derefOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
