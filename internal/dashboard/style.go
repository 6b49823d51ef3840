package dashboard

import (
	"fmt"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
)

// ANSI colour codes used for terminal rendering.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// Style describes how a status is displayed.
type Style struct {
	Label string
	Color string
}

// StatusStyle maps a status to its display style. Unknown statuses render in gray
// with their raw value as label.
func StatusStyle(status domain.EquipmentStatus) Style {
	switch status {
	case domain.EquipmentStatusGood:
		return Style{Label: "Good", Color: colorGreen}
	case domain.EquipmentStatusWarning:
		return Style{Label: "Warning", Color: colorYellow}
	case domain.EquipmentStatusCritical:
		return Style{Label: "Critical", Color: colorRed}
	case domain.EquipmentStatusMaintenance:
		return Style{Label: "Maintenance", Color: colorBlue}
	default:
		return Style{Label: string(status), Color: colorGray}
	}
}

// Render wraps the label in the style's colour. With color false the plain label is returned.
func (s Style) Render(color bool) string {
	if !color {
		return s.Label
	}
	return s.Color + s.Label + colorReset
}

// DueLabel phrases a DaysUntil value for humans.
func DueLabel(days *int) string {
	switch {
	case days == nil:
		return "not scheduled"
	case *days < 0:
		if *days == -1 {
			return "overdue by 1 day"
		}
		return fmt.Sprintf("overdue by %d days", -*days)
	case *days == 0:
		return "due today"
	case *days == 1:
		return "due in 1 day"
	default:
		return fmt.Sprintf("due in %d days", *days)
	}
}
