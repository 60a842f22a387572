// cmd/client/cmd/task/list.go
package task

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/domain/task"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список задач",
	Long:  `Просмотр всех задач с сервера, новые первыми.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		tasks, err := app.Tasks.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения списка задач: %w", err)
		}

		if listFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(tasks)
		}

		return printTasksTable(tasks)
	},
}

func printTasksTable(tasks []task.Task) error {
	if len(tasks) == 0 {
		fmt.Println("Задач пока нет")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tСтатус\tНазвание\tСоздано\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")

	for _, t := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n",
			t.ID,
			statusLabel(t.Status),
			truncate(t.Title, 40),
			t.CreatedAt.Format("2006-01-02"),
		)
	}

	w.Flush()
	fmt.Printf("\nВсего задач: %d\n", len(tasks))
	return nil
}

func statusLabel(s task.Status) string {
	if s == task.StatusCompleted {
		return color.GreenString("✓ %s", s)
	}
	return color.YellowString("· %s", s)
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "формат вывода (table, json)")
}
