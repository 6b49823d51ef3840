package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/gearguard-backend/pkg/client"
)

func logCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "log",
		Aliases:           []string{"logs", "maintenance"},
		Short:             "Record and browse maintenance history",
		PersistentPreRunE: e.signedInPreRun,
	}
	cmd.AddCommand(logAddCmd(e), logListCmd(e), logDeleteCmd(e))
	return cmd
}

func logAddCmd(e *env) *cobra.Command {
	var (
		in         client.CreateLogInput
		date, kind string
		cost       float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a maintenance event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date == "" {
				in.Date = e.now().UTC().Truncate(day)
			} else {
				d, err := parseDate(date)
				if err != nil {
					return err
				}
				in.Date = d
			}
			in.Type = strings.ToUpper(kind)
			if cmd.Flags().Changed("cost") {
				in.Cost = &cost
			}

			var entry *client.MaintenanceLog
			err := e.call(cmd.Context(), func(ctx context.Context) error {
				var err error
				entry, err = e.client.CreateLog(ctx, in)
				return err
			})
			if err != nil {
				return err
			}
			e.printf("Recorded %s on %s (%s)\n", strings.ToLower(entry.Type), formatDate(&entry.Date), entry.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.EquipmentID, "equipment", "", "equipment id")
	f.StringVar(&kind, "type", "", "ROUTINE, REPAIR, INSPECTION or EMERGENCY")
	f.StringVar(&in.Description, "description", "", "what was done")
	f.Float64Var(&cost, "cost", 0, "cost of the work")
	f.StringVar(&date, "date", "", "date of the work, YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("equipment")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func logListCmd(e *env) *cobra.Command {
	var from, to, kind, equipmentID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List maintenance logs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if equipmentID != "" && (from != "" || to != "" || kind != "") {
				return fmt.Errorf("--equipment cannot be combined with --from, --to or --type")
			}

			var filter client.LogFilter
			var err error
			if filter.StartDate, err = optionalDate(from); err != nil {
				return err
			}
			if filter.EndDate, err = optionalDate(to); err != nil {
				return err
			}
			filter.Type = strings.ToUpper(kind)

			var logs []client.MaintenanceLog
			err = e.call(cmd.Context(), func(ctx context.Context) error {
				if equipmentID != "" {
					logs, err = e.client.ListEquipmentLogs(ctx, equipmentID)
				} else {
					logs, err = e.client.ListLogs(ctx, filter)
				}
				return err
			})
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				e.printf("No maintenance logs.\n")
				return nil
			}

			t := newTable(e.io.Out, "DATE", "TYPE", "EQUIPMENT", "COST", "DESCRIPTION", "ID")
			for _, l := range logs {
				equipment := l.EquipmentID
				if l.Equipment != nil {
					equipment = l.Equipment.Name
				}
				t.row(formatDate(&l.Date), l.Type, equipment, formatCost(l.Cost), l.Description, l.ID)
			}
			return t.flush()
		},
	}
	f := cmd.Flags()
	f.StringVar(&from, "from", "", "earliest date, inclusive")
	f.StringVar(&to, "to", "", "latest date, inclusive")
	f.StringVar(&kind, "type", "", "only this maintenance type")
	f.StringVar(&equipmentID, "equipment", "", "only logs of this equipment")
	return cmd
}

func logDeleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a maintenance log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := e.call(cmd.Context(), func(ctx context.Context) error {
				return e.client.DeleteLog(ctx, args[0])
			})
			if err != nil {
				return err
			}
			e.printf("Deleted log %s\n", args[0])
			return nil
		},
	}
}
