// cmd/client/cmd/auth/login.go
package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/domain/user"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему",
	Long: `Вход по имени пользователя и паролю.

После входа сессия сохраняется локально, все команды заметок работают
от имени этого пользователя до выхода.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Вход в систему ===")
		fmt.Println()

		// Запрашиваем имя пользователя
		fmt.Print("Имя пользователя: ")
		var username string
		_, _ = fmt.Scanln(&username)

		// Запрашиваем пароль
		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		// Выполняем вход
		fmt.Println("Аутентификация...")
		err = app.Users.Authenticate(cmd.Context(), username, string(password))
		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) {
				return fmt.Errorf("неверное имя пользователя или пароль")
			}
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		fmt.Println()
		fmt.Println("✅ Вход выполнен успешно!")

		return nil
	},
}
