// cmd/client/cmd/task/create.go
package task

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var (
	createTitle       string
	createDescription string
	createStatus      string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать новую задачу",
	Long: `Создание задачи на сервере.

Статус по умолчанию — pending.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		// Запрашиваем название
		if createTitle == "" {
			fmt.Print("Название задачи: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				createTitle = scanner.Text()
			}
		}

		req := client.TaskRequest{Title: &createTitle}
		if cmd.Flags().Changed("desc") {
			req.Description = &createDescription
		}
		if cmd.Flags().Changed("status") {
			req.Status = &createStatus
		}

		created, err := app.Tasks.Create(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("ошибка создания задачи: %w", err)
		}

		fmt.Printf("✅ Задача '%s' создана (ID: %d)\n", created.Title, created.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "название задачи")
	CreateCmd.Flags().StringVar(&createDescription, "desc", "", "описание задачи")
	CreateCmd.Flags().StringVar(&createStatus, "status", "", "статус (pending, completed)")
}
