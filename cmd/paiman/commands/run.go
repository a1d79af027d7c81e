package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runCmd() *cobra.Command {
	var (
		titles    []string
		printHTML bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the entry screen, go to the overview and add paintings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
			defer cancel()

			if err := appCtx.Start(ctx); err != nil {
				return err
			}
			if err := appCtx.Entry.Continue(ctx); err != nil {
				return err
			}

			for _, title := range titles {
				dialog, err := appCtx.Overview.OpenAddPainting(ctx)
				if err != nil {
					return err
				}
				if err := dialog.SelectImage(ctx); err != nil {
					return err
				}
				if err := dialog.Apply(ctx, title); err != nil {
					return err
				}
			}

			wv := appCtx.Leaves.WebView
			for _, msg := range wv.Errors() {
				logger.Warn("ui error", zap.String("message", msg))
			}

			out := cmd.OutOrStdout()
			previews := appCtx.Leaves.OverviewModel.Previews()
			fmt.Fprintf(out, "%d painting(s)\n", len(previews))
			for _, p := range previews {
				fmt.Fprintf(out, "  %s  %s\n", p.ID, p.Title)
			}
			if printHTML {
				fmt.Fprintln(out, wv.HTML())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&titles, "add", "a", nil, "add a painting with this title using the newest picture (repeatable)")
	cmd.Flags().BoolVar(&printHTML, "html", false, "print the last rendered page")
	return cmd
}
