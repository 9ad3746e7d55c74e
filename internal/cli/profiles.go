package cli

import (
	"fmt"
	"strings"

	"artgg/internal/store"

	"github.com/spf13/cobra"
)

func newProfilesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List taste and display profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := store.Open(ctx, app.Dir)
			if err != nil {
				return err
			}
			defer st.Close()

			taste, err := st.TasteProfiles(ctx)
			if err != nil {
				return err
			}
			display, err := st.DisplayProfiles(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Taste profiles (%d)\n", len(taste))
			for _, p := range taste {
				fmt.Fprintf(out, "  %-4d %-24s %s..%s  public-domain=%v  keywords=[%s]\n",
					p.ID, p.Name, optYear(p.DateStart), optYear(p.DateEnd),
					p.IsPublicDomain, strings.Join(p.Keywords, ", "))
			}
			fmt.Fprintf(out, "Display profiles (%d)\n", len(display))
			for _, p := range display {
				fmt.Fprintf(out, "  %-4d %-24s color=%s orientation=%s ratio=%s\n",
					p.ID, p.Name, p.WallpaperColor, p.Orientation, p.AspectRatio)
			}
			return nil
		},
	}
}

func optYear(v *int64) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}
