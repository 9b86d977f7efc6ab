package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskmasterhq/taskmaster/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP/JSON API server that backs the browser client.

The listen address comes from server.listen in ~/.taskmaster/config.yaml
(default 127.0.0.1:3000) and can be overridden with --listen.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		listen, _ := cmd.Flags().GetString("listen")
		if listen == "" {
			listen = cfg.Server.Listen
		}

		srv := server.New(newLogger("server"))
		if err := srv.ListenAndServe(listen); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	}),
}

func init() {
	serveCmd.Flags().StringP("listen", "l", "", "Listen address (host:port)")
}
