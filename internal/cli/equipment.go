package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/gearguard-backend/internal/dashboard"
	"github.com/heartmarshall/gearguard-backend/pkg/client"
)

var clearableFields = map[string]string{
	"purchase-date":    "purchaseDate",
	"last-maintenance": "lastMaintenance",
	"next-maintenance": "nextMaintenance",
	"notes":            "notes",
}

func equipmentCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "equipment",
		Aliases: []string{"eq"},
		Short:   "Manage tracked equipment",
		PersistentPreRunE: e.signedInPreRun,
	}
	cmd.AddCommand(
		equipmentAddCmd(e),
		equipmentListCmd(e),
		equipmentShowCmd(e),
		equipmentUpdateCmd(e),
		equipmentDeleteCmd(e),
		equipmentUpcomingCmd(e),
	)
	return cmd
}

func equipmentAddCmd(e *env) *cobra.Command {
	var (
		in                    client.CreateEquipmentInput
		purchase, next, notes string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a piece of equipment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if in.PurchaseDate, err = optionalDate(purchase); err != nil {
				return err
			}
			if in.NextMaintenance, err = optionalDate(next); err != nil {
				return err
			}
			if cmd.Flags().Changed("notes") {
				in.Notes = &notes
			}
			in.Status = strings.ToUpper(in.Status)

			var eq *client.Equipment
			err = e.call(cmd.Context(), func(ctx context.Context) error {
				eq, err = e.client.CreateEquipment(ctx, in)
				return err
			})
			if err != nil {
				return err
			}
			e.printf("Added %s (%s)\n", eq.Name, eq.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "equipment name")
	f.StringVar(&in.Category, "category", "", "category, e.g. Vehicle")
	f.StringVar(&in.Status, "status", "", "GOOD, WARNING, CRITICAL or MAINTENANCE (default GOOD)")
	f.StringVar(&purchase, "purchase-date", "", "purchase date, YYYY-MM-DD")
	f.StringVar(&next, "next-maintenance", "", "next scheduled maintenance, YYYY-MM-DD")
	f.StringVar(&notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func equipmentListCmd(e *env) *cobra.Command {
	var filter client.EquipmentFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List equipment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter.Status = strings.ToUpper(filter.Status)

			var items []client.Equipment
			err := e.call(cmd.Context(), func(ctx context.Context) error {
				var err error
				items, err = e.client.ListEquipment(ctx, filter)
				return err
			})
			if err != nil {
				return err
			}
			if len(items) == 0 {
				e.printf("No equipment yet. Add some with 'gearguard equipment add'.\n")
				return nil
			}

			t := newTable(e.io.Out, "ID", "NAME", "CATEGORY", "STATUS", "LAST", "NEXT", "RECENT LOGS")
			for _, eq := range items {
				t.row(eq.ID, eq.Name, eq.Category, e.status(eq.Status),
					formatDate(eq.LastMaintenance), formatDate(eq.NextMaintenance),
					fmt.Sprint(len(eq.MaintenanceLogs)))
			}
			return t.flush()
		},
	}
	cmd.Flags().StringVar(&filter.Category, "category", "", "only this category")
	cmd.Flags().StringVar(&filter.Status, "status", "", "only this status")
	return cmd
}

func equipmentShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one piece of equipment with its full history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var eq *client.Equipment
			err := e.call(cmd.Context(), func(ctx context.Context) error {
				var err error
				eq, err = e.client.GetEquipment(ctx, args[0])
				return err
			})
			if err != nil {
				return err
			}

			days := dashboard.DaysUntilMaintenance(eq.NextMaintenance, e.now())
			e.printf("%s\n", eq.Name)
			e.printf("  id:               %s\n", eq.ID)
			e.printf("  category:         %s\n", eq.Category)
			e.printf("  status:           %s\n", e.status(eq.Status))
			e.printf("  purchased:        %s\n", formatDate(eq.PurchaseDate))
			e.printf("  last maintenance: %s\n", formatDate(eq.LastMaintenance))
			e.printf("  next maintenance: %s (%s)\n", formatDate(eq.NextMaintenance), dashboard.DueLabel(days))
			e.printf("  notes:            %s\n", orDash(eq.Notes))

			if len(eq.MaintenanceLogs) == 0 {
				e.printf("\nNo maintenance recorded.\n")
				return nil
			}
			e.printf("\n")
			t := newTable(e.io.Out, "DATE", "TYPE", "COST", "DESCRIPTION", "ID")
			for _, l := range eq.MaintenanceLogs {
				t.row(formatDate(&l.Date), l.Type, formatCost(l.Cost), l.Description, l.ID)
			}
			return t.flush()
		},
	}
}

func equipmentUpdateCmd(e *env) *cobra.Command {
	var (
		name, category, status, notes string
		purchase, last, next          string
		reset                         []string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a piece of equipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			var in client.UpdateEquipmentInput
			if f.Changed("name") {
				in.Name = &name
			}
			if f.Changed("category") {
				in.Category = &category
			}
			if f.Changed("status") {
				s := strings.ToUpper(status)
				in.Status = &s
			}
			if f.Changed("notes") {
				in.Notes = &notes
			}
			var err error
			if in.PurchaseDate, err = optionalDate(purchase); err != nil {
				return err
			}
			if in.LastMaintenance, err = optionalDate(last); err != nil {
				return err
			}
			if in.NextMaintenance, err = optionalDate(next); err != nil {
				return err
			}
			for _, c := range reset {
				field, ok := clearableFields[c]
				if !ok {
					return fmt.Errorf("cannot clear %q: use purchase-date, last-maintenance, next-maintenance or notes", c)
				}
				in.Clear = append(in.Clear, field)
			}

			var eq *client.Equipment
			err = e.call(cmd.Context(), func(ctx context.Context) error {
				eq, err = e.client.UpdateEquipment(ctx, args[0], in)
				return err
			})
			if err != nil {
				return err
			}
			e.printf("Updated %s (%s)\n", eq.Name, eq.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "name", "", "new name")
	f.StringVar(&category, "category", "", "new category")
	f.StringVar(&status, "status", "", "new status")
	f.StringVar(&notes, "notes", "", "new notes")
	f.StringVar(&purchase, "purchase-date", "", "new purchase date, YYYY-MM-DD")
	f.StringVar(&last, "last-maintenance", "", "new last maintenance date, YYYY-MM-DD")
	f.StringVar(&next, "next-maintenance", "", "new next maintenance date, YYYY-MM-DD")
	f.StringSliceVar(&reset, "clear", nil, "fields to reset: purchase-date, last-maintenance, next-maintenance, notes")
	return cmd
}

func equipmentDeleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete equipment and its maintenance history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := e.call(cmd.Context(), func(ctx context.Context) error {
				return e.client.DeleteEquipment(ctx, args[0])
			})
			if err != nil {
				return err
			}
			e.printf("Deleted %s\n", args[0])
			return nil
		},
	}
}

func equipmentUpcomingCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "List equipment with scheduled maintenance, soonest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var items []client.UpcomingEquipment
			err := e.call(cmd.Context(), func(ctx context.Context) error {
				var err error
				items, err = e.client.UpcomingEquipment(ctx)
				return err
			})
			if err != nil {
				return err
			}
			if len(items) == 0 {
				e.printf("Nothing scheduled.\n")
				return nil
			}

			t := newTable(e.io.Out, "NEXT", "DUE", "NAME", "CATEGORY", "STATUS", "ID")
			for _, it := range items {
				t.row(formatDate(it.NextMaintenance), dashboard.DueLabel(it.DaysUntil),
					it.Name, it.Category, e.status(it.Status), it.ID)
			}
			return t.flush()
		},
	}
}
