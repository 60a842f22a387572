// cmd/client/cmd/task/update.go
package task

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var (
	updateTitle       string
	updateDescription string
	updateStatus      string
)

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Обновить задачу",
	Long: `Обновление полей задачи по ID.

Меняются только поля, указанные флагами. Пустое описание (--desc "")
очищает его.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("неверный ID задачи: %w", err)
		}

		var req client.TaskRequest
		if cmd.Flags().Changed("title") {
			req.Title = &updateTitle
		}
		if cmd.Flags().Changed("desc") {
			req.Description = &updateDescription
		}
		if cmd.Flags().Changed("status") {
			req.Status = &updateStatus
		}

		updated, err := app.Tasks.Update(cmd.Context(), id, req)
		if err != nil {
			return fmt.Errorf("ошибка обновления задачи: %w", err)
		}

		fmt.Printf("✅ Задача '%s' обновлена\n", updated.Title)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "новое название")
	UpdateCmd.Flags().StringVar(&updateDescription, "desc", "", "новое описание")
	UpdateCmd.Flags().StringVar(&updateStatus, "status", "", "статус (pending, completed)")
}
