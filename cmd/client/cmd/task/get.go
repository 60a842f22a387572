// cmd/client/cmd/task/get.go
package task

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var getFormat string

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Просмотреть задачу",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("неверный ID задачи: %w", err)
		}

		t, err := app.Tasks.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка получения задачи: %w", err)
		}

		if getFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(t)
		}

		color.New(color.FgCyan, color.Bold).Println(t.Title)
		fmt.Printf("ID:        %d\n", t.ID)
		fmt.Printf("Статус:    %s\n", statusLabel(t.Status))
		fmt.Printf("Создано:   %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Изменено:  %s\n", t.UpdatedAt.Format("2006-01-02 15:04:05"))
		if t.Description != nil && *t.Description != "" {
			fmt.Println()
			fmt.Println(*t.Description)
		}

		return nil
	},
}

func init() {
	GetCmd.Flags().StringVarP(&getFormat, "format", "f", "simple", "формат вывода (simple, json)")
}
