package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/business-console-api/pkg/client"
	"github.com/business-console-api/pkg/console"
	"github.com/spf13/cobra"
)

func newDepartmentsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "departments",
		Short: "Работа с отделами производственной единицы",
	}
	cmd.AddCommand(
		newDepartmentsListCmd(opts),
		newDepartmentsCreateCmd(opts),
		newDepartmentsShowCmd(opts),
		newDepartmentsDeleteCmd(opts),
	)
	return cmd
}

func newDepartmentsListCmd(opts *rootOptions) *cobra.Command {
	var localUnitID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Отделы производственной единицы",
		RunE: func(cmd *cobra.Command, args []string) error {
			if localUnitID == 0 {
				return fmt.Errorf("--local-unit is required")
			}

			api := opts.client()
			notifier := &console.QueueNotifier{}
			ctrl := console.NewListController(console.ListConfig[client.Department]{
				Fetch: func(ctx context.Context) ([]client.Department, error) {
					return api.Departments().List(ctx, localUnitID)
				},
				Create: func(ctx context.Context, payload any) error {
					_, err := api.Departments().Create(ctx, payload)
					return err
				},
				Delete: func(ctx context.Context, id int64) error {
					return api.Departments().Delete(ctx, id)
				},
				Notifier:  notifier,
				Confirmer: stdinConfirmer{},
			})

			ctrl.Refresh(cmd.Context())
			defer flushAlerts(notifier)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, d := range ctrl.Items() {
				fmt.Fprintf(w, "%d\t%s\n", d.ID, d.Name)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int64Var(&localUnitID, "local-unit", 0, "идентификатор производственной единицы")
	return cmd
}

func newDepartmentsCreateCmd(opts *rootOptions) *cobra.Command {
	var localUnitID int64
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать отдел",
		RunE: func(cmd *cobra.Command, args []string) error {
			if localUnitID == 0 || name == "" {
				return fmt.Errorf("--local-unit and --name are required")
			}

			payload := map[string]any{"localUnitId": localUnitID, "name": name}
			dept, err := opts.client().Departments().Create(cmd.Context(), payload)
			if err != nil {
				return err
			}

			fmt.Printf("department #%d %q created\n", dept.ID, dept.Name)
			return nil
		},
	}

	cmd.Flags().Int64Var(&localUnitID, "local-unit", 0, "идентификатор производственной единицы")
	cmd.Flags().StringVar(&name, "name", "", "название отдела")
	return cmd
}

// departmentDetail - карточка отдела со связанными коллекциями
type departmentDetail struct {
	Department client.Department
	LocalUnit  *client.LocalUnit
	Roster     []client.HRAssignment
	Equipments []client.Equipment
}

func newDepartmentsShowCmd(opts *rootOptions) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Карточка отдела: состав и оборудование",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == 0 {
				return fmt.Errorf("--id is required")
			}

			api := opts.client()
			notifier := &console.QueueNotifier{}

			ctrl := console.NewDetailController(id, console.DetailConfig[departmentDetail]{
				Fetch: func(ctx context.Context, id int64) (*departmentDetail, error) {
					dept, err := api.Departments().Get(ctx, id)
					if err != nil {
						return nil, err
					}
					return &departmentDetail{Department: *dept}, nil
				},
				// Производственная единица зависит от загруженного отдела
				Dependent: func(ctx context.Context, d *departmentDetail) error {
					unit, err := api.LocalUnits().Get(ctx, d.Department.LocalUnitID)
					if err != nil {
						return err
					}
					d.LocalUnit = unit
					return nil
				},
				// Состав и оборудование независимы, грузятся параллельно
				Related: []func(ctx context.Context, d *departmentDetail) error{
					func(ctx context.Context, d *departmentDetail) error {
						roster, err := api.Departments().ListHR(ctx, d.Department.ID)
						if err != nil {
							return err
						}
						d.Roster = roster
						return nil
					},
					func(ctx context.Context, d *departmentDetail) error {
						eqs, err := api.Equipments().List(ctx, d.Department.ID)
						if err != nil {
							return err
						}
						d.Equipments = eqs
						return nil
					},
				},
				Update: func(ctx context.Context, id int64, payload any) (*departmentDetail, error) {
					dept, err := api.Departments().Update(ctx, id, payload)
					if err != nil {
						return nil, err
					}
					return &departmentDetail{Department: *dept}, nil
				},
				Delete: func(ctx context.Context, id int64) error {
					return api.Departments().Delete(ctx, id)
				},
				Notifier:  notifier,
				Confirmer: stdinConfirmer{},
			})

			ctrl.Refresh(cmd.Context())
			flushAlerts(notifier)

			detail := ctrl.Record()
			if detail == nil {
				return fmt.Errorf("department not found")
			}

			fmt.Printf("Department #%d: %s\n", detail.Department.ID, detail.Department.Name)
			if detail.LocalUnit != nil {
				fmt.Printf("Local unit: %s\n", detail.LocalUnit.Name)
			}

			fmt.Printf("\nRoster (%d):\n", len(detail.Roster))
			for _, a := range detail.Roster {
				state := "open"
				if a.EndDate != nil {
					state = "closed " + a.EndDate.Format("2006-01-02")
				}
				fmt.Printf("  %s %s, since %s (%s)\n", a.Name, a.Surname, a.StartDate.Format("2006-01-02"), state)
			}

			fmt.Printf("\nEquipment (%d):\n", len(detail.Equipments))
			for _, e := range detail.Equipments {
				fmt.Printf("  #%d %s %s\n", e.ID, e.Name, e.SerialNumber)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "идентификатор отдела")
	return cmd
}

func newDepartmentsDeleteCmd(opts *rootOptions) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Удалить отдел",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == 0 {
				return fmt.Errorf("--id is required")
			}

			if !(stdinConfirmer{}).Confirm(fmt.Sprintf("Delete department #%d?", id)) {
				return nil
			}
			return opts.client().Departments().Delete(cmd.Context(), id)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "идентификатор отдела")
	return cmd
}
