package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/pagegen/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Generate all pages and regenerate them on every change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			w, err := watch.New([]string{a.cfg.Root, a.cfg.Templates}, watch.DefaultDebounce, a.logger)
			if err != nil {
				return err
			}

			a.out.PrintHeader("🚀 Community Page Generator")
			a.generateAll(ctx)
			a.out.PrintStep("👀", "Watching %s and %s for changes (Ctrl+C to stop)", a.cfg.Root, a.cfg.Templates)

			return w.Run(ctx, func() {
				a.out.PrintDone("🔄 Change detected, regenerating all pages...")
				a.generateAll(ctx)
			})
		},
	}
}
