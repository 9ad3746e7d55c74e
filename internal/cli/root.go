// Package cli wires the artgg command tree. Running the bare command starts
// the interactive TUI; subcommands cover non-interactive maintenance.
package cli

import (
	"context"
	"os"
	"strings"

	"artgg/internal/store"
	"artgg/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type App struct {
	Dir string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "artgg",
		Short:        "Classical artwork wallpaper generator",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  artgg

  # Seed the keyword catalog
  artgg seed

  # Inspect profiles from scripts
  artgg profiles
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("ARTGG_DATA_DIR", ""), "Path to the data dir (default: ~/.local/share/artgg)")

	cmd.AddCommand(newSeedCmd(app))
	cmd.AddCommand(newProfilesCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newPathsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	ctx := context.Background()
	st, err := store.Open(ctx, app.Dir)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := tui.Run(ctx, st); err != nil {
		log.Error("session ended on storage error", "err", err)
		return err
	}
	return nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
