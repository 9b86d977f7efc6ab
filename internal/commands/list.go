package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskmasterhq/taskmaster/internal/db"
	"github.com/taskmasterhq/taskmaster/internal/parser"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List tasks with optional filters for status, priority, category and free-text search",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		status, _ := cmd.Flags().GetString("status")
		priority, _ := cmd.Flags().GetString("priority")
		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		tasks, err := db.GetTasks(db.TaskQueryOptions{
			Status:   status,
			Priority: priority,
			Category: category,
			Search:   search,
		})
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}

		if jsonOutput {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(tasks); err != nil {
				fmt.Printf("Error encoding tasks: %v\n", err)
			}
			return
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found. Use 'taskmaster add \"task description\"' to create your first task.")
			return
		}

		// Print table header
		fmt.Printf("%-4s %-12s %-40s %-12s %-8s %s\n", "ID", "STATUS", "TITLE", "CATEGORY", "PRIORITY", "DUE")
		fmt.Println(strings.Repeat("-", 92))

		for _, task := range tasks {
			title := task.Title
			if len(title) > 38 {
				title = title[:35] + "..."
			}

			category := task.Category
			if len(category) > 10 {
				category = category[:7] + "..."
			}

			fmt.Printf("%-4d %-12s %-40s %-12s %-8s %s\n",
				task.ID,
				task.Status,
				title,
				category,
				task.Priority,
				parser.FormatDueDate(task.DueDate))
		}

		fmt.Printf("\n%d task(s)\n", len(tasks))
	}),
}

func init() {
	listCmd.Flags().StringP("status", "s", "", "Filter by status: todo, in-progress, done")
	listCmd.Flags().StringP("priority", "p", "", "Filter by priority: low, medium, high")
	listCmd.Flags().StringP("category", "c", "", "Filter by category")
	listCmd.Flags().String("search", "", "Substring search in title and description")
	listCmd.Flags().Bool("json", false, "Output as JSON")
}
