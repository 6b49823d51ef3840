package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/dashboard"
	"github.com/heartmarshall/gearguard-backend/internal/domain"
	"github.com/heartmarshall/gearguard-backend/pkg/client"
)

const (
	dateLayout = "2006-01-02"
	day        = 24 * time.Hour
)

// parseDate accepts a calendar date (read as UTC midnight) or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(dateLayout)
}

func formatCost(c *float64) string {
	if c == nil {
		return "-"
	}
	return strconv.FormatFloat(*c, 'f', 2, 64)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func (e *env) status(s string) string {
	return dashboard.StatusStyle(domain.EquipmentStatus(s)).Render(e.color)
}

// table writes tab-separated rows aligned into columns.
type table struct {
	w *tabwriter.Writer
}

func newTable(out io.Writer, header ...string) *table {
	t := &table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
	t.row(header...)
	return t
}

func (t *table) row(cols ...string) {
	fmt.Fprintln(t.w, strings.Join(cols, "\t"))
}

func (t *table) flush() error {
	return t.w.Flush()
}

// toDomainEquipment converts an API record for the dashboard calculations.
// Unparseable ids become uuid.Nil; they are only used for display.
func toDomainEquipment(in client.Equipment) domain.Equipment {
	return domain.Equipment{
		ID:              parseID(in.ID),
		UserID:          parseID(in.UserID),
		Name:            in.Name,
		Category:        in.Category,
		PurchaseDate:    in.PurchaseDate,
		LastMaintenance: in.LastMaintenance,
		NextMaintenance: in.NextMaintenance,
		Status:          domain.EquipmentStatus(in.Status),
		Notes:           in.Notes,
		CreatedAt:       in.CreatedAt,
		UpdatedAt:       in.UpdatedAt,
	}
}

func toDomainLog(in client.MaintenanceLog) domain.MaintenanceLog {
	out := domain.MaintenanceLog{
		ID:          parseID(in.ID),
		EquipmentID: parseID(in.EquipmentID),
		Type:        domain.MaintenanceType(in.Type),
		Description: in.Description,
		Cost:        in.Cost,
		Date:        in.Date,
		CreatedAt:   in.CreatedAt,
	}
	if in.Equipment != nil {
		out.Equipment = &domain.EquipmentSummary{
			ID:       parseID(in.Equipment.ID),
			Name:     in.Equipment.Name,
			Category: in.Equipment.Category,
		}
	}
	return out
}

func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
