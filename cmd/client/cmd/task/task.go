package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd - родительская команда для всех операций с задачами
var TaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Управление задачами",
	Long:  `Создание, просмотр, обновление и удаление задач на сервере.`,
}
