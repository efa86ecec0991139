package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/business-console-api/pkg/client"
	"github.com/business-console-api/pkg/console"
	"github.com/spf13/cobra"
)

func newDocumentsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Документы, привязанные к сущности",
	}
	cmd.AddCommand(
		newDocumentsListCmd(opts),
		newDocumentsUploadCmd(opts),
		newDocumentsRenameCmd(opts),
		newDocumentsDownloadCmd(opts),
		newDocumentsDeleteCmd(opts),
	)
	return cmd
}

func fileController(opts *rootOptions, scope client.DocumentScope, notifier console.Notifier) *console.FileController {
	return console.NewFileController(console.FileConfig{
		API:       opts.client().Documents(),
		Scope:     scope,
		Notifier:  notifier,
		Confirmer: stdinConfirmer{},
	})
}

func newDocumentsListCmd(opts *rootOptions) *cobra.Command {
	var companyID, refID int64
	var module, sortKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Документы сущности",
		RunE: func(cmd *cobra.Command, args []string) error {
			if refID == 0 || module == "" {
				return fmt.Errorf("--ref and --module are required")
			}

			notifier := &console.QueueNotifier{}
			ctrl := fileController(opts, client.DocumentScope{CompanyID: companyID, RefID: refID, ModuleName: module}, notifier)

			ctrl.Refresh(cmd.Context())
			if sortKey != "" {
				ctrl.SortBy(console.SortKey(sortKey))
			}
			defer flushAlerts(notifier)

			if ctrl.EmptyState() {
				fmt.Println("no documents")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tSIZE\tUPLOADED")
			for _, d := range ctrl.Files() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", d.ID, d.Name, d.FileType, d.FileSize, d.CreatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int64Var(&companyID, "company", 0, "идентификатор компании")
	cmd.Flags().Int64Var(&refID, "ref", 0, "идентификатор сущности")
	cmd.Flags().StringVar(&module, "module", "", "раздел (companies, departments, ...)")
	cmd.Flags().StringVar(&sortKey, "sort", "", "сортировка: name, date или size")
	return cmd
}

func newDocumentsUploadCmd(opts *rootOptions) *cobra.Command {
	var companyID, refID int64
	var module, description string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Загрузить файл",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if companyID == 0 || refID == 0 || module == "" {
				return fmt.Errorf("--company, --ref and --module are required")
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			notifier := &console.QueueNotifier{}
			ctrl := fileController(opts, client.DocumentScope{CompanyID: companyID, RefID: refID, ModuleName: module}, notifier)

			ctrl.StageUpload(filepath.Base(args[0]), description, content)
			ctrl.SubmitUpload(cmd.Context())
			flushAlerts(notifier)

			if ctrl.Buffer() != nil {
				return fmt.Errorf("upload failed")
			}
			fmt.Println("uploaded")
			return nil
		},
	}

	cmd.Flags().Int64Var(&companyID, "company", 0, "идентификатор компании")
	cmd.Flags().Int64Var(&refID, "ref", 0, "идентификатор сущности")
	cmd.Flags().StringVar(&module, "module", "", "раздел")
	cmd.Flags().StringVar(&description, "description", "", "описание документа")
	return cmd
}

func newDocumentsRenameCmd(opts *rootOptions) *cobra.Command {
	var id int64
	var name, description string

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Переименовать документ без повторной загрузки",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == 0 || name == "" {
				return fmt.Errorf("--id and --name are required")
			}

			doc, err := opts.client().Documents().Rename(cmd.Context(), id, name, description)
			if err != nil {
				return err
			}

			fmt.Printf("document #%d renamed to %q\n", doc.ID, doc.Name)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "идентификатор документа")
	cmd.Flags().StringVar(&name, "name", "", "новое имя")
	cmd.Flags().StringVar(&description, "description", "", "новое описание")
	return cmd
}

func newDocumentsDownloadCmd(opts *rootOptions) *cobra.Command {
	var id int64
	var out string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Скачать содержимое документа",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == 0 {
				return fmt.Errorf("--id is required")
			}

			docs := opts.client().Documents()

			// Имя файла берётся из свежих метаданных, если не задано явно
			doc, err := docs.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if out == "" {
				out = doc.Name
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if _, err := docs.Download(cmd.Context(), id, f); err != nil {
				return err
			}

			fmt.Printf("saved to %s\n", out)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "идентификатор документа")
	cmd.Flags().StringVar(&out, "out", "", "путь сохранения")
	return cmd
}

func newDocumentsDeleteCmd(opts *rootOptions) *cobra.Command {
	var id int64
	var companyID, refID int64
	var module string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Удалить документ",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == 0 || refID == 0 || module == "" {
				return fmt.Errorf("--id, --ref and --module are required")
			}

			notifier := &console.QueueNotifier{}
			ctrl := fileController(opts, client.DocumentScope{CompanyID: companyID, RefID: refID, ModuleName: module}, notifier)

			ctrl.RequestDelete(cmd.Context(), id, fmt.Sprintf("Delete document #%d?", id))
			flushAlerts(notifier)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "идентификатор документа")
	cmd.Flags().Int64Var(&companyID, "company", 0, "идентификатор компании")
	cmd.Flags().Int64Var(&refID, "ref", 0, "идентификатор сущности")
	cmd.Flags().StringVar(&module, "module", "", "раздел")
	return cmd
}
