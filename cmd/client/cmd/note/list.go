// cmd/client/cmd/note/list.go
package note

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/domain/note"
)

var (
	listSearch string
	listSort   string
	listAsc    bool
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список заметок",
	Long: `Просмотр заметок текущего пользователя.

Поиск ищет подстроку в названии и тексте без учета регистра.
Сортировка по времени изменения (updated) или по названию (title),
по умолчанию новые первыми.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
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

		view := note.NewView()
		view.Search = listSearch
		if note.SortKey(listSort) == note.SortByTitle {
			view.ToggleSort(note.SortByTitle)
		}
		if listAsc {
			view.Desc = false
		}

		visible := view.Apply(notes)

		if listFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(visible)
		}

		return printNotes(visible, listSearch)
	},
}

func printNotes(notes []note.Note, search string) error {
	if len(notes) == 0 {
		if search != "" {
			fmt.Printf("По запросу %q ничего не найдено\n", search)
		} else {
			fmt.Println("Заметок пока нет")
		}
		return nil
	}

	titleColor := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)

	fmt.Printf("Найдено заметок: %d\n\n", len(notes))

	for i, n := range notes {
		fmt.Printf("%d. ", i+1)
		titleColor.Println(n.Title)
		faint.Printf("   ID: %s | Изменено: %s\n", n.ID, modifiedAt(n).Format("2006-01-02 15:04"))
		if n.Body != "" {
			fmt.Printf("   %s\n", truncate(n.Body, 60))
		}
		fmt.Println()
	}

	return nil
}

func modifiedAt(n note.Note) time.Time {
	if n.UpdatedAt.IsZero() {
		return n.CreatedAt
	}
	return n.UpdatedAt
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "поиск по названию и тексту")
	ListCmd.Flags().StringVar(&listSort, "sort", "updated", "сортировка (updated, title)")
	ListCmd.Flags().BoolVar(&listAsc, "asc", false, "сортировать по возрастанию")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, json)")
}
