package cli

import (
	"artgg/internal/store"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// defaultKeywords is the stock tag list distilled from the Met collection
// tags the artwork pool is built from. `artgg seed custom-tag ...` overrides.
var defaultKeywords = []string{
	"portraits",
	"landscapes",
	"still life",
	"flowers",
	"animals",
	"birds",
	"horses",
	"mythology",
	"religion",
	"architecture",
	"seascapes",
	"boats",
	"cities",
	"interiors",
	"music",
	"war",
	"winter",
	"night",
	"women",
	"men",
	"children",
	"dance",
}

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed [keyword ...]",
		Short: "Seed the keyword catalog (defaults to the built-in tag list)",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := args
			if len(values) == 0 {
				values = defaultKeywords
			}

			ctx := cmd.Context()
			st, err := store.Open(ctx, app.Dir)
			if err != nil {
				return err
			}
			defer st.Close()

			inserted, err := st.SeedKeywords(ctx, values)
			if err != nil {
				return err
			}
			catalog, err := st.KeywordCatalog(ctx)
			if err != nil {
				return err
			}
			log.Info("keyword catalog seeded", "inserted", inserted, "total", len(catalog))
			return nil
		},
	}
}
