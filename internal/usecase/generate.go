package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/3-lines-studio/pagegen/internal/core"
	"github.com/3-lines-studio/pagegen/internal/pages"
)

var ErrNoPages = errors.New("no page folders found")

type PageResult struct {
	Page       string
	OutputPath string
	Success    bool
	Error      error
}

type BatchResult struct {
	Pages     []PageResult
	Total     int
	Succeeded int
	Success   bool
	Error     error
}

type GenerateService struct {
	pipeline
	cli  CLIOutput
	jobs int
}

func NewGenerateService(fs FileSystem, root string, loader Loader, renderer Renderer, cli CLIOutput) *GenerateService {
	return &GenerateService{
		pipeline: pipeline{
			fs:       fs,
			root:     root,
			loader:   loader,
			renderer: renderer,
		},
		cli:  cli,
		jobs: 1,
	}
}

// SetJobs bounds how many pages GenerateAll renders at once. Values below one
// mean sequential.
func (s *GenerateService) SetJobs(n int) {
	if n < 1 {
		n = 1
	}
	s.jobs = n
}

func (s *GenerateService) GeneratePage(ctx context.Context, pageName string) PageResult {
	s.cli.PrintStep("🔧", "Generating %s page...", pageName)
	result := s.generate(ctx, pageName)
	s.printResult(result)
	return result
}

func (s *GenerateService) GenerateAll(ctx context.Context) BatchResult {
	names, err := pages.Discover(s.fs, s.root)
	if err != nil {
		s.cli.PrintError("Failed to list %s: %v", s.root, err)
		return BatchResult{Error: fmt.Errorf("discover pages: %w", err)}
	}
	if len(names) == 0 {
		s.cli.PrintError("No page folders found. Each page should have a folder with %s", core.ContentFile)
		return BatchResult{Error: ErrNoPages}
	}

	s.cli.PrintStep("📁", "Found page folders: %s", strings.Join(names, ", "))

	results := make([]PageResult, len(names))
	g := new(errgroup.Group)
	g.SetLimit(s.jobs)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i] = s.generate(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	batch := BatchResult{
		Pages: results,
		Total: len(names),
	}
	for _, result := range results {
		s.cli.PrintStep("🔧", "Generating %s page...", result.Page)
		s.printResult(result)
		if result.Success {
			batch.Succeeded++
		}
	}
	batch.Success = batch.Succeeded == batch.Total
	if !batch.Success {
		batch.Error = fmt.Errorf("%d of %d pages failed", batch.Total-batch.Succeeded, batch.Total)
	}
	return batch
}

func (s *GenerateService) generate(ctx context.Context, pageName string) PageResult {
	result := PageResult{Page: pageName}

	html, err := s.render(ctx, pageName)
	if err != nil {
		result.Error = err
		return result
	}

	output := core.PathsFor(s.root, pageName).Output
	if err := s.fs.WriteFile(output, []byte(html), 0644); err != nil {
		result.Error = fmt.Errorf("write %s: %w", output, err)
		return result
	}

	result.OutputPath = output
	result.Success = true
	return result
}

func (s *GenerateService) printResult(result PageResult) {
	if result.Success {
		s.cli.PrintSuccess("Generated: %s", result.OutputPath)
		return
	}
	s.cli.PrintError("Error: %v", result.Error)
}
