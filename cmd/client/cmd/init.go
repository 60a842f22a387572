// cmd/client/cmd/init.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/auth"
	"notekeeper/cmd/client/cmd/note"
	"notekeeper/cmd/client/cmd/task"
	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Показать состояние клиента",
	Long: `Команда status показывает текущее окружение клиента:
директорию с данными, активного пользователя и доступность сервера задач.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Printf("Директория данных: %s\n", cfg.ConfigDir)
		fmt.Printf("Сервер задач:      %s\n", cfg.ServerAddress)

		username, err := app.CurrentUser(cmd.Context())
		if err != nil {
			fmt.Println("Пользователь:      вход не выполнен")
		} else {
			fmt.Printf("Пользователь:      %s\n", username)
		}

		if err := app.CheckConnection(cmd.Context()); err != nil {
			fmt.Printf("⚠️  Сервер задач недоступен: %v\n", err)
		} else {
			fmt.Println("✓ Соединение с сервером установлено")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	// Добавляем команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	// Добавляем команды работы с заметками
	rootCmd.AddCommand(note.NoteCmd)
	note.NoteCmd.AddCommand(note.CreateCmd)
	note.NoteCmd.AddCommand(note.ListCmd)
	note.NoteCmd.AddCommand(note.GetCmd)
	note.NoteCmd.AddCommand(note.EditCmd)
	note.NoteCmd.AddCommand(note.DeleteCmd)

	// Добавляем команды работы с задачами
	rootCmd.AddCommand(task.TaskCmd)
	task.TaskCmd.AddCommand(task.CreateCmd)
	task.TaskCmd.AddCommand(task.ListCmd)
	task.TaskCmd.AddCommand(task.GetCmd)
	task.TaskCmd.AddCommand(task.UpdateCmd)
	task.TaskCmd.AddCommand(task.ToggleCmd)
	task.TaskCmd.AddCommand(task.DeleteCmd)
}
