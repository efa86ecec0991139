package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/business-console-api/pkg/client"
	"github.com/business-console-api/pkg/console"
	"github.com/spf13/cobra"
)

// rootOptions - общие флаги всех команд
type rootOptions struct {
	apiURL    string
	tokenFile string
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".business-console-token"
	}
	return filepath.Join(home, ".config", "business-console", "token")
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "console",
		Short:         "Консоль администрирования компаний",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.apiURL, "api", envOr("CONSOLE_API_URL", "http://localhost:8080"), "адрес API сервера")
	cmd.PersistentFlags().StringVar(&opts.tokenFile, "token-file", envOr("CONSOLE_TOKEN_FILE", defaultTokenPath()), "файл с токеном")

	cmd.AddCommand(
		newLoginCmd(opts),
		newCompaniesCmd(opts),
		newDepartmentsCmd(opts),
		newDocumentsCmd(opts),
	)
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (o *rootOptions) tokenSource() client.FileTokenSource {
	return client.FileTokenSource{Path: o.tokenFile}
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.apiURL, o.tokenSource())
}

// stdinConfirmer спрашивает подтверждение в терминале.
// Любой ответ кроме y считается отказом
type stdinConfirmer struct{}

func (stdinConfirmer) Confirm(title string) bool {
	fmt.Printf("%s [y/N]: ", title)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// flushAlerts выводит накопленные уведомления контроллера
func flushAlerts(notifier *console.QueueNotifier) {
	for _, alert := range notifier.Drain() {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", alert.Severity, alert.Message)
	}
}
