package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/pagegen/internal/adapters/fs"
	httpadapter "github.com/3-lines-studio/pagegen/internal/adapters/http"
	"github.com/3-lines-studio/pagegen/internal/core"
	"github.com/3-lines-studio/pagegen/internal/pages"
	"github.com/3-lines-studio/pagegen/internal/usecase"
	"github.com/3-lines-studio/pagegen/internal/watch"
)

func newServeCmd(a *app) *cobra.Command {
	var noReload bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve live previews of every page",
		Long: `serve renders pages on every request, so edits to content, styles,
scripts or templates show up on the next refresh. Open tabs reload
automatically unless --no-reload is given. Nothing is written to disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runServe(cmd.Context(), a.cfg.Reload && !noReload)
		},
	}

	cmd.Flags().String("addr", core.DefaultAddr, "address to listen on")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "disable live reload")
	return cmd
}

func (a *app) runServe(ctx context.Context, reload bool) error {
	// Previews never write: the page tree is opened read-only and addressed
	// relative to its own root.
	site := fs.NewReadOnlyFileSystem(os.DirFS(a.cfg.Root))
	preview := usecase.NewPreviewService(site, ".", pages.NewLoader(site, "."), a.renderer())

	var hub *httpadapter.Reload
	if reload {
		hub = httpadapter.NewReload()
		w, err := watch.New([]string{a.cfg.Root, a.cfg.Templates}, watch.DefaultDebounce, a.logger)
		if err != nil {
			return err
		}
		go func() {
			_ = w.Run(ctx, func() {
				a.logger.Info("change detected, reloading previews")
				hub.Notify()
			})
		}()
	}

	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           httpadapter.NewRouter(preview, hub, a.logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	base := a.listenURL()
	a.out.PrintHeader("🚀 Starting development server for live preview...")
	a.out.PrintStep("📄", "Available endpoints:")
	a.out.PrintFile(base + "/ - Redirect to first page")
	a.out.PrintFile(base + "/pages - List all pages")
	a.out.PrintFile(base + "/<page_name> - View specific page")
	a.out.PrintStep("💡", "Run 'pagegen' to write body.html for deployment")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
