// cmd/client/cmd/note/delete.go
package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить заметку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		username, err := app.CurrentUser(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Notes.Remove(cmd.Context(), username, args[0]); err != nil {
			return fmt.Errorf("ошибка удаления заметки: %w", err)
		}

		fmt.Println("✅ Заметка удалена")
		return nil
	},
}
