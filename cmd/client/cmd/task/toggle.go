// cmd/client/cmd/task/toggle.go
package task

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var ToggleCmd = &cobra.Command{
	Use:   "toggle [id]",
	Short: "Переключить статус задачи",
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

		t, err := app.Tasks.Toggle(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка переключения статуса: %w", err)
		}

		fmt.Printf("✅ Задача '%s': %s\n", t.Title, statusLabel(t.Status))
		return nil
	},
}
