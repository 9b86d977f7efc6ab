package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskmasterhq/taskmaster/internal/db"
	"github.com/taskmasterhq/taskmaster/internal/parser"
)

var addCmd = &cobra.Command{
	Use:   "add [task description]",
	Short: "Add a new task",
	Long: `Add a new task with optional metadata.

Smart parsing syntax:
  #tag1,tag2   - Tags (comma-separated or individual)
  @category    - Category (defaults to "general")
  +priority    - Priority (low/medium/high or 1/2/3)
  due:tomorrow - Due date (yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days)

Example:
  taskmaster add "Write report #work,urgent @office +high due:2 days"`,
	Args: cobra.MinimumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		parsed := parser.ParseTitle(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			fmt.Printf("Error parsing task: %s\n", strings.Join(parsed.Errors, ", "))
			return
		}

		// Explicit flags take precedence over inline syntax.
		if category, _ := cmd.Flags().GetString("category"); category != "" {
			parsed.Category = category
		}
		if tags, _ := cmd.Flags().GetStringSlice("tags"); len(tags) > 0 {
			parsed.Tags = tags
		}
		if priority, _ := cmd.Flags().GetString("priority"); priority != "" {
			parsed.Priority = parser.NormalizePriority(priority)
		}
		if due, _ := cmd.Flags().GetString("due"); due != "" {
			dueDate, err := parser.ParseDueDate(due)
			if err != nil {
				fmt.Printf("Error parsing due date: %v\n", err)
				return
			}
			parsed.DueDate = dueDate
		}

		description, _ := cmd.Flags().GetString("description")

		task, err := db.CreateTask(db.CreateTaskRequest{
			Title:       parsed.Title,
			Description: description,
			Priority:    parsed.Priority,
			Tags:        strings.Join(parsed.Tags, ","),
			DueDate:     parsed.DueDate,
			Category:    parsed.Category,
		})
		if err != nil {
			fmt.Printf("Error creating task: %v\n", err)
			return
		}

		fmt.Printf("Created task #%d: %s\n", task.ID, task.Title)
		if task.Category != "general" {
			fmt.Printf("  Category: %s\n", task.Category)
		}
		if task.Tags != "" {
			fmt.Printf("  Tags: %s\n", strings.Join(task.TagList(), ", "))
		}
		fmt.Printf("  Priority: %s\n", task.Priority)
		if task.DueDate != nil {
			fmt.Printf("  Due: %s\n", parser.FormatDueDate(task.DueDate))
		}
	}),
}

func init() {
	addCmd.Flags().StringP("description", "d", "", "Task description")
	addCmd.Flags().StringP("category", "c", "", "Category name")
	addCmd.Flags().StringSliceP("tags", "t", []string{}, "Comma-separated tags")
	addCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high, or 1-3")
	addCmd.Flags().String("due", "", "Due date: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days")
}
