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

func newCompaniesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Работа со списком компаний",
	}
	cmd.AddCommand(
		newCompaniesListCmd(opts),
		newCompaniesCreateCmd(opts),
		newCompaniesDeleteCmd(opts),
	)
	return cmd
}

func companiesController(opts *rootOptions, notifier console.Notifier) *console.ListController[client.Company] {
	api := opts.client()
	return console.NewListController(console.ListConfig[client.Company]{
		Fetch: func(ctx context.Context) ([]client.Company, error) {
			return api.Companies().ListAll(ctx)
		},
		Create: func(ctx context.Context, payload any) error {
			_, err := api.Companies().Create(ctx, payload)
			return err
		},
		Delete: func(ctx context.Context, id int64) error {
			return api.Companies().Delete(ctx, id)
		},
		Notifier:  notifier,
		Confirmer: stdinConfirmer{},
	})
}

func newCompaniesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Список компаний",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifier := &console.QueueNotifier{}
			ctrl := companiesController(opts, notifier)

			ctrl.Refresh(cmd.Context())
			defer flushAlerts(notifier)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tADDRESS\tEMAIL\tVAT")
			for _, c := range ctrl.Items() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Address, c.Email, c.VatCode)
			}
			return w.Flush()
		},
	}
}

func newCompaniesCreateCmd(opts *rootOptions) *cobra.Command {
	var name, address, email, phone, vat string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать компанию",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			notifier := &console.QueueNotifier{}
			ctrl := companiesController(opts, notifier)

			payload := map[string]any{
				"name":    name,
				"address": address,
				"email":   email,
				"phone":   phone,
				"vatCode": vat,
			}

			ctrl.OpenCreateDialog()
			ctrl.SubmitCreate(cmd.Context(), payload)
			flushAlerts(notifier)

			if ctrl.DialogOpen() {
				return fmt.Errorf("company was not created")
			}
			fmt.Println("company created")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "название")
	cmd.Flags().StringVar(&address, "address", "", "адрес")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&phone, "phone", "", "телефон")
	cmd.Flags().StringVar(&vat, "vat", "", "номер НДС")
	return cmd
}

func newCompaniesDeleteCmd(opts *rootOptions) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Удалить компанию",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == 0 {
				return fmt.Errorf("--id is required")
			}

			notifier := &console.QueueNotifier{}
			ctrl := companiesController(opts, notifier)

			ctrl.RequestDelete(cmd.Context(), id, fmt.Sprintf("Delete company #%d?", id))
			flushAlerts(notifier)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "идентификатор компании")
	return cmd
}
