package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskmasterhq/taskmaster/internal/db"
	"github.com/taskmasterhq/taskmaster/internal/models"
	"github.com/taskmasterhq/taskmaster/internal/tui"
)

var pomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Run the pomodoro focus timer",
	Long: `Run the pomodoro countdown timer.

The work duration comes from the pomodoro_duration setting (default 25
minutes). Completed sessions are recorded; pausing or resetting persists
nothing. Optionally link the session to a task with --task.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		workMinutes := cfg.Pomodoro.WorkMinutes
		if value := db.GetSetting(models.SettingPomodoroDuration, ""); value != "" {
			if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
				workMinutes = parsed
			}
		}

		var task *models.Task
		if taskID, _ := cmd.Flags().GetUint("task"); taskID != 0 {
			found, err := db.GetTaskByID(taskID)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if found == nil {
				fmt.Printf("No task #%d\n", taskID)
				return
			}
			task = found
		}

		if err := tui.RunTimerTUI(workMinutes, task); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the kanban board",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if err := tui.RunBoardTUI(); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

func init() {
	pomodoroCmd.Flags().Uint("task", 0, "Link the session to a task ID")
}
