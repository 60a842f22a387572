// cmd/client/cmd/task/delete.go
package task

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить задачу",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("неверный ID задачи: %w", err)
		}

		if err := app.Tasks.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("ошибка удаления задачи: %w", err)
		}

		fmt.Println("✅ Задача удалена")
		return nil
	},
}
