package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskmasterhq/taskmaster/internal/db"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show productivity statistics",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		stats, err := db.GetStatistics()
		if err != nil {
			fmt.Printf("Error fetching statistics: %v\n", err)
			return
		}

		fmt.Println("Tasks")
		fmt.Printf("  total:        %d\n", stats.Tasks.Total)
		fmt.Printf("  todo:         %d\n", stats.Tasks.Todo)
		fmt.Printf("  in progress:  %d\n", stats.Tasks.InProgress)
		fmt.Printf("  completed:    %d\n", stats.Tasks.Completed)
		fmt.Printf("  time spent:   %dm\n", stats.Tasks.TotalTime)
		fmt.Printf("  done today:   %d\n", stats.CompletedToday)

		// Guard the floor so an empty collection reads as 0%.
		total := stats.Tasks.Total
		if total < 1 {
			total = 1
		}
		fmt.Printf("  completion:   %d%%\n", stats.Tasks.Completed*100/total)

		fmt.Printf("\nNotes: %d\n", stats.Notes.Total)

		if len(stats.Priority) > 0 {
			fmt.Println("\nBy priority")
			for _, row := range stats.Priority {
				fmt.Printf("  %-8s %d\n", row.Priority, row.Count)
			}
		}

		if len(stats.Categories) > 0 {
			fmt.Println("\nBy category")
			for _, row := range stats.Categories {
				fmt.Printf("  %-12s %d\n", row.Category, row.Count)
			}
		}

		recent, err := db.GetRecentActivity(db.ActivityPreviewLimit)
		if err == nil && len(recent) > 0 {
			fmt.Println("\nRecent activity")
			for _, entry := range recent {
				fmt.Printf("  %s  %-8s %s\n", entry.CreatedAt.Format("Jan 02 15:04"), entry.ActionType, entry.Description)
			}
		}
	}),
}
