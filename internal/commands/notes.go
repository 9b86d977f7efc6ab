package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskmasterhq/taskmaster/internal/db"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage sticky notes",
}

var notesAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new note",
	Args:  cobra.MinimumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		content, _ := cmd.Flags().GetString("content")
		color, _ := cmd.Flags().GetString("color")
		category, _ := cmd.Flags().GetString("category")
		pinned, _ := cmd.Flags().GetBool("pin")

		note, err := db.CreateNote(db.CreateNoteRequest{
			Title:    strings.Join(args, " "),
			Content:  content,
			Color:    color,
			Category: category,
			IsPinned: pinned,
		})
		if err != nil {
			fmt.Printf("Error creating note: %v\n", err)
			return
		}

		fmt.Printf("Created note #%d: %s\n", note.ID, note.Title)
	}),
}

var notesListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List notes, pinned first",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")

		notes, err := db.GetNotes(db.NoteQueryOptions{Category: category, Search: search})
		if err != nil {
			fmt.Printf("Error fetching notes: %v\n", err)
			return
		}

		if len(notes) == 0 {
			fmt.Println("No notes found.")
			return
		}

		for _, note := range notes {
			pin := " "
			if note.IsPinned {
				pin = "*"
			}
			fmt.Printf("%s #%-4d [%s] %s\n", pin, note.ID, note.Category, note.Title)
			if note.Content != "" {
				fmt.Printf("     %s\n", note.Content)
			}
		}
	}),
}

var notesPinCmd = &cobra.Command{
	Use:   "pin [note-id]",
	Short: "Toggle a note's pin status",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := parseNoteID(args[0])
		if err != nil {
			fmt.Println(err)
			return
		}

		note, err := db.GetNoteByID(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if note == nil {
			fmt.Printf("No note #%d\n", id)
			return
		}

		if err := db.UpdateNotePin(id, !note.IsPinned); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if note.IsPinned {
			fmt.Printf("Unpinned note #%d\n", id)
		} else {
			fmt.Printf("Pinned note #%d\n", id)
		}
	}),
}

var notesDeleteCmd = &cobra.Command{
	Use:     "rm [note-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := parseNoteID(args[0])
		if err != nil {
			fmt.Println(err)
			return
		}

		if err := db.DeleteNote(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Deleted note #%d\n", id)
	}),
}

func parseNoteID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid note ID '%s'", arg)
	}
	return uint(id), nil
}

func init() {
	notesAddCmd.Flags().StringP("content", "m", "", "Note content")
	notesAddCmd.Flags().String("color", "", "Swatch color (default #ffd700)")
	notesAddCmd.Flags().StringP("category", "c", "", "Category name")
	notesAddCmd.Flags().Bool("pin", false, "Pin the note")

	notesListCmd.Flags().StringP("category", "c", "", "Filter by category")
	notesListCmd.Flags().String("search", "", "Substring search in title and content")

	notesCmd.AddCommand(notesAddCmd)
	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesPinCmd)
	notesCmd.AddCommand(notesDeleteCmd)
}
