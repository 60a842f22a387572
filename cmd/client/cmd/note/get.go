// cmd/client/cmd/note/get.go
package note

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/domain/note"
)

var getFormat string

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Просмотреть заметку",
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

		notes, err := app.Notes.List(cmd.Context(), username)
		if err != nil {
			return fmt.Errorf("ошибка получения заметок: %w", err)
		}

		found, err := findNote(notes, args[0])
		if err != nil {
			return err
		}

		if getFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(found)
		}

		color.New(color.FgCyan, color.Bold).Println(found.Title)
		fmt.Printf("ID:        %s\n", found.ID)
		fmt.Printf("Создано:   %s\n", found.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Изменено:  %s\n", modifiedAt(*found).Format("2006-01-02 15:04:05"))
		if found.Image != "" {
			fmt.Printf("Картинка:  %s\n", found.Image)
		}
		fmt.Println()
		fmt.Println(found.Body)

		return nil
	},
}

func findNote(notes []note.Note, id string) (*note.Note, error) {
	for i := range notes {
		if notes[i].ID == id {
			return &notes[i], nil
		}
	}
	return nil, fmt.Errorf("заметка с ID %s не найдена", id)
}

func init() {
	GetCmd.Flags().StringVarP(&getFormat, "format", "f", "simple", "формат вывода (simple, json)")
}
