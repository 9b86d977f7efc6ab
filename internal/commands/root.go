package commands

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/taskmasterhq/taskmaster/internal/config"
	"github.com/taskmasterhq/taskmaster/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "taskmaster",
	Short: "A personal productivity suite",
	Long: `taskmaster combines task tracking (kanban/calendar), notes, a pomodoro
timer and an activity log, backed by SQLite and served over a small HTTP API.`,
}

// initApp loads configuration, opens the database and panics on failure
func initApp() {
	c, err := config.Load()
	if err != nil {
		panic(err)
	}
	cfg = c

	db.SetLogger(newLogger("store"))

	if err := db.Initialize(cfg.Database.Path); err != nil {
		panic(err)
	}
}

// withDB wraps a command function to initialize config and database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		fn(cmd, args)
	}
}

func newLogger(name string) hclog.Logger {
	level := "info"
	if cfg != nil {
		level = cfg.Logging.Level
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: hclog.LevelFromString(level),
	})
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskmaster %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(pomodoroCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
