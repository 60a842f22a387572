// cmd/client/cmd/note/edit.go
package note

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/domain/note"
)

var (
	editTitle string
	editBody  string
	editImage string
)

var EditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Изменить заметку",
	Long: `Изменение существующей заметки по ID.

Меняются только поля, указанные флагами, остальные остаются прежними.
Время создания заметки сохраняется.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		username, err := app.CurrentUser(cmd.Context())
		if err != nil {
			return err
		}

		notes, err := app.Notes.List(cmd.Context(), username)
		if err != nil {
			return fmt.Errorf("ошибка получения заметок: %w", err)
		}

		found, err := findNote(notes, args[0])
		if err != nil {
			return err
		}

		updated := *found
		if cmd.Flags().Changed("title") {
			updated.Title = editTitle
		}
		if cmd.Flags().Changed("body") {
			updated.Body = editBody
		}
		if cmd.Flags().Changed("image") {
			updated.Image = editImage
		}

		saved, err := app.Notes.Save(cmd.Context(), username, updated)
		if err != nil {
			if errors.Is(err, note.ErrEmptyTitle) {
				return fmt.Errorf("название заметки не может быть пустым")
			}
			return fmt.Errorf("ошибка сохранения заметки: %w", err)
		}

		fmt.Printf("✅ Заметка '%s' обновлена\n", saved.Title)
		return nil
	},
}

func init() {
	EditCmd.Flags().StringVarP(&editTitle, "title", "t", "", "новое название")
	EditCmd.Flags().StringVarP(&editBody, "body", "b", "", "новый текст")
	EditCmd.Flags().StringVar(&editImage, "image", "", "новая ссылка на изображение")
}
