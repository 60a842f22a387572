// cmd/client/cmd/auth/register.go
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

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрировать нового пользователя",
	Long: `Регистрация нового пользователя на этом устройстве.

Имя пользователя чувствительно к регистру: Alice и alice — разные
пользователи. Пароль хранится только в виде хэша.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Регистрация нового пользователя ===")
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

		fmt.Print("Повторите пароль: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("пароли не совпадают")
		}

		// Регистрируем пользователя
		fmt.Println("Регистрация...")
		err = app.Users.Register(cmd.Context(), username, string(password))
		if err != nil {
			switch {
			case errors.Is(err, user.ErrDuplicateUser):
				return fmt.Errorf("пользователь %q уже существует", username)
			case errors.Is(err, user.ErrInvalidInput):
				return fmt.Errorf("имя пользователя и пароль не могут быть пустыми")
			default:
				return fmt.Errorf("ошибка регистрации: %w", err)
			}
		}

		fmt.Println()
		fmt.Println("✅ Регистрация успешно завершена!")
		fmt.Println("Теперь вы можете войти в систему: notekeeper auth login")

		return nil
	},
}
