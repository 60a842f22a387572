// cmd/client/cmd/note/create.go
package note

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/domain/note"
)

var (
	createTitle string
	createBody  string
	createImage string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать новую заметку",
	Long: `Создание новой заметки текущего пользователя.

Если флаги не указаны, название и текст запрашиваются интерактивно.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		username, err := app.CurrentUser(cmd.Context())
		if err != nil {
			return err
		}

		// Запрашиваем название
		if createTitle == "" {
			fmt.Print("Название заметки: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				createTitle = scanner.Text()
			}
		}

		// Запрашиваем текст
		if createBody == "" {
			fmt.Println("Введите текст заметки (Ctrl+D для завершения):")
			scanner := bufio.NewScanner(os.Stdin)
			var lines []string
			for scanner.Scan() {
				lines = append(lines, scanner.Text())
			}
			createBody = strings.Join(lines, "\n")
		}

		saved, err := app.Notes.Save(cmd.Context(), username, note.Note{
			Title: createTitle,
			Body:  createBody,
			Image: createImage,
		})
		if err != nil {
			if errors.Is(err, note.ErrEmptyTitle) {
				return fmt.Errorf("название заметки обязательно")
			}
			return fmt.Errorf("ошибка создания заметки: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Заметка '%s' создана (ID: %s)\n", saved.Title, saved.ID)

		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "название заметки")
	CreateCmd.Flags().StringVarP(&createBody, "body", "b", "", "текст заметки")
	CreateCmd.Flags().StringVar(&createImage, "image", "", "ссылка на изображение")
}
