package note

import (
	"github.com/spf13/cobra"
)

// NoteCmd - родительская команда для всех операций с заметками
var NoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Управление заметками",
	Long:  `Создание, просмотр, редактирование и удаление личных заметок.`,
}
