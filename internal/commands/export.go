package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskmasterhq/taskmaster/internal/db"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tasks and notes as a JSON snapshot",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		snapshot, err := db.Export()
		if err != nil {
			fmt.Printf("Error exporting data: %v\n", err)
			return
		}

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			file, err := os.Create(path)
			if err != nil {
				fmt.Printf("Error creating %s: %v\n", path, err)
				return
			}
			defer file.Close()
			out = file
		}

		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(snapshot); err != nil {
			fmt.Printf("Error encoding export: %v\n", err)
			return
		}

		if out != os.Stdout {
			fmt.Printf("Exported %d task(s) and %d note(s)\n", len(snapshot.Tasks), len(snapshot.Notes))
		}
	}),
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write the snapshot to a file instead of stdout")
}
