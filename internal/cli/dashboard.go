package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/gearguard-backend/internal/dashboard"
	"github.com/heartmarshall/gearguard-backend/internal/domain"
	"github.com/heartmarshall/gearguard-backend/pkg/client"
)

func dashboardCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:               "dashboard",
		Short:             "Show counters, upcoming maintenance and recent activity",
		Args:              cobra.NoArgs,
		PersistentPreRunE: e.signedInPreRun,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				items []client.Equipment
				logs  []client.MaintenanceLog
			)
			err := e.call(cmd.Context(), func(ctx context.Context) error {
				var err error
				if items, err = e.client.ListEquipment(ctx, client.EquipmentFilter{}); err != nil {
					return err
				}
				logs, err = e.client.ListLogs(ctx, client.LogFilter{})
				return err
			})
			if err != nil {
				return err
			}

			equipment := make([]domain.Equipment, 0, len(items))
			for _, it := range items {
				equipment = append(equipment, toDomainEquipment(it))
			}
			history := make([]domain.MaintenanceLog, 0, len(logs))
			for _, l := range logs {
				history = append(history, toDomainLog(l))
			}

			return e.renderDashboard(dashboard.Summarize(equipment, history, e.now()))
		},
	}
}

func (e *env) renderDashboard(s dashboard.Summary) error {
	e.printf("Equipment: %d  Good: %d  Warning: %d  Maintenance logs: %d\n",
		s.TotalEquipment, s.GoodCount, s.WarningCount, s.TotalLogs)

	e.printf("\nUpcoming maintenance\n")
	if len(s.Upcoming) == 0 {
		e.printf("  Nothing scheduled.\n")
	} else {
		t := newTable(e.io.Out, "  NEXT", "DUE", "NAME", "STATUS")
		for _, it := range s.Upcoming {
			t.row("  "+formatDate(it.Equipment.NextMaintenance), dashboard.DueLabel(it.DaysUntil),
				it.Equipment.Name, e.status(string(it.Equipment.Status)))
		}
		if err := t.flush(); err != nil {
			return err
		}
	}

	e.printf("\nRecent activity\n")
	if len(s.Recent) == 0 {
		e.printf("  No maintenance recorded.\n")
		return nil
	}
	t := newTable(e.io.Out, "  DATE", "TYPE", "EQUIPMENT", "DESCRIPTION")
	for _, l := range s.Recent {
		name := "-"
		if l.Equipment != nil {
			name = l.Equipment.Name
		}
		t.row("  "+formatDate(&l.Date), string(l.Type), name, l.Description)
	}
	return t.flush()
}
