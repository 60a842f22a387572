// cmd/client/cmd/auth/whoami.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Показать текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		username, ok, err := app.Users.Current(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка чтения сессии: %w", err)
		}
		if !ok {
			fmt.Println("Вход не выполнен")
			return nil
		}

		fmt.Println(username)
		return nil
	},
}
