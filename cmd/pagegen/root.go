package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/pagegen/internal/adapters/cli"
	"github.com/3-lines-studio/pagegen/internal/adapters/fs"
	"github.com/3-lines-studio/pagegen/internal/config"
	"github.com/3-lines-studio/pagegen/internal/core"
	"github.com/3-lines-studio/pagegen/internal/logging"
	"github.com/3-lines-studio/pagegen/internal/pages"
	"github.com/3-lines-studio/pagegen/internal/render"
	"github.com/3-lines-studio/pagegen/internal/usecase"
)

// errReported marks failures whose details were already printed.
var errReported = errors.New("generation failed")

type app struct {
	out     *cli.Output
	logOut  io.Writer
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
	fs      *fs.OSFileSystem
}

func newRootCmd(out *cli.Output, logOut io.Writer) *cobra.Command {
	a := &app{
		out:    out,
		logOut: logOut,
		fs:     fs.NewOSFileSystem(),
	}

	cmd := &cobra.Command{
		Use:   "pagegen [page]",
		Short: "Generate static community pages",
		Long: `pagegen renders every page folder (content.json, style.css, script.js)
through its HTML template and writes the result to <page>/body.html.

With no argument all page folders are generated. With a page name only
that page is generated.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd.Context(), args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./pagegen.yaml)")
	flags.String("root", ".", "directory holding the page folders")
	flags.String("templates", core.DefaultTmplDir, "directory holding the page templates")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int("jobs", 1, "pages generated concurrently")

	cmd.AddCommand(
		newServeCmd(a),
		newNewPageCmd(a),
		newWatchCmd(a),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(a.logOut, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	if cfg.File != "" {
		logger.Debug("using config file", "path", cfg.File)
	}
	return nil
}

func (a *app) loader() *pages.Loader {
	return pages.NewLoader(a.fs, a.cfg.Root)
}

func (a *app) renderer() *render.Renderer {
	return render.New(os.DirFS(a.cfg.Templates))
}

func (a *app) generator() *usecase.GenerateService {
	svc := usecase.NewGenerateService(a.fs, a.cfg.Root, a.loader(), a.renderer(), a.out)
	svc.SetJobs(a.cfg.Jobs)
	return svc
}

func (a *app) runGenerate(ctx context.Context, args []string) error {
	a.out.PrintHeader("🚀 Community Page Generator")

	var ok bool
	if len(args) == 1 {
		a.out.PrintStep("", "Generating specific page: %s", args[0])
		ok = a.generator().GeneratePage(ctx, args[0]).Success
	} else {
		a.out.PrintStep("", "Generating all pages...")
		ok = a.generateAll(ctx)
	}

	if !ok {
		a.out.PrintDone("💥 Generation failed!")
		return errReported
	}
	a.out.PrintDone("🎉 Generation completed successfully!")
	return nil
}

func (a *app) generateAll(ctx context.Context) bool {
	report := cli.NewGenerateReport(a.out)
	batch := a.generator().GenerateAll(ctx)
	if batch.Total == 0 {
		return false
	}

	report.SetPageCount(batch.Total)
	for _, page := range batch.Pages {
		outcome := cli.PageOutcome{
			Page:    page.Page,
			Success: page.Success,
			Output:  page.OutputPath,
		}
		if page.Error != nil {
			outcome.Error = page.Error.Error()
		}
		report.Add(outcome)
	}
	report.Render()

	if batch.Error != nil {
		a.logger.Debug("batch finished with failures", "error", batch.Error)
	}
	return batch.Success
}

func (a *app) listenURL() string {
	return fmt.Sprintf("http://%s", a.cfg.Addr)
}
