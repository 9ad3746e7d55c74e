package cli

import (
	"fmt"
	"strings"

	"artgg/internal/store"

	"github.com/spf13/cobra"
)

func newPathsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the resolved data directory and database path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := strings.TrimSpace(app.Dir)
			if dir == "" {
				dir = store.DefaultDir()
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "data dir: %s\n", dir)
			fmt.Fprintf(out, "database: %s\n", store.DBPath(dir))
			return nil
		},
	}
}
