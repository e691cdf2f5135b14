package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/pagegen/internal/usecase"
)

func newNewPageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new-page <name>",
		Short: "Create a page folder and template from the built-in skeleton",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			svc := usecase.NewNewPageService(a.fs, a.out)
			result := svc.NewPage(usecase.NewPageInput{
				Name:         args[0],
				Root:         a.cfg.Root,
				TemplatesDir: a.cfg.Templates,
				PreviewAddr:  a.cfg.Addr,
			})
			if result.Success {
				return nil
			}
			a.logger.Debug("new-page failed", "page", args[0], "error", result.Error)
			return errReported
		},
	}
}
