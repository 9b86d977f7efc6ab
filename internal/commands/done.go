package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskmasterhq/taskmaster/internal/db"
	"github.com/taskmasterhq/taskmaster/internal/models"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := parseTaskID(args[0])
		if err != nil {
			fmt.Println(err)
			return
		}

		if err := db.UpdateTaskStatus(id, models.StatusDone); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		task, err := db.GetTaskByID(id)
		if err != nil || task == nil {
			fmt.Printf("Marked task #%d as done\n", id)
			return
		}

		fmt.Printf("Marked task #%d as done: %s\n", task.ID, task.Title)
		if task.CompletedAt != nil {
			fmt.Printf("Completed at: %s\n", task.CompletedAt.Format("15:04:05"))
		}
	}),
}

var undoneCmd = &cobra.Command{
	Use:   "undone [task-id]",
	Short: "Mark a completed task back to todo status",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := parseTaskID(args[0])
		if err != nil {
			fmt.Println(err)
			return
		}

		if err := db.UpdateTaskStatus(id, models.StatusTodo); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Marked task #%d back to todo\n", id)
	}),
}

var deleteCmd = &cobra.Command{
	Use:     "rm [task-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := parseTaskID(args[0])
		if err != nil {
			fmt.Println(err)
			return
		}

		if err := db.DeleteTask(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Deleted task #%d\n", id)
	}),
}

func parseTaskID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID '%s'", arg)
	}
	return uint(id), nil
}
