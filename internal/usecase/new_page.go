package usecase

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/3-lines-studio/pagegen/internal/core"
	"github.com/3-lines-studio/pagegen/internal/templates"
)

type NewPageInput struct {
	Name         string
	Root         string
	TemplatesDir string
	PreviewAddr  string
}

type NewPageOutput struct {
	Success bool
	Files   []string
	Error   error
}

type NewPageService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewNewPageService(fs FileSystem, cli CLIOutput) *NewPageService {
	return &NewPageService{
		fs:  fs,
		cli: cli,
	}
}

func (s *NewPageService) NewPage(input NewPageInput) NewPageOutput {
	if err := core.ValidateNewPageName(input.Name); err != nil {
		s.cli.PrintError("%v", err)
		return NewPageOutput{Error: err}
	}

	pageDir := core.PathsFor(input.Root, input.Name).Dir
	if s.fs.FileExists(pageDir) || s.fs.IsDir(pageDir) {
		err := fmt.Errorf("%w: page folder '%s' already exists", core.ErrPageExists, input.Name)
		s.cli.PrintError("%v", err)
		return NewPageOutput{Error: err}
	}

	created, err := s.scaffold(input, pageDir)
	if err != nil {
		s.rollback(pageDir, created)
		s.cli.PrintError("%v", err)
		return NewPageOutput{Error: err}
	}

	s.cli.PrintSuccess("Created new page: %s", input.Name)
	s.cli.PrintStep("📁", "Files created:")
	for _, f := range created {
		s.cli.PrintFile(f)
	}
	addr := input.PreviewAddr
	if addr == "" {
		addr = core.DefaultAddr
	}
	s.cli.PrintStep("🌐", "Preview at: http://%s%s", addr, core.PageURL(input.Name))

	return NewPageOutput{
		Success: true,
		Files:   created,
	}
}

// scaffold returns every file it wrote, also on failure.
func (s *NewPageService) scaffold(input NewPageInput, pageDir string) ([]string, error) {
	data := templates.NewTemplateData(input.Name)
	var created []string

	if err := s.fs.MkdirAll(pageDir, 0755); err != nil {
		return created, fmt.Errorf("failed to create page folder: %w", err)
	}

	content, err := templates.MarshalContent(templates.NewDefaultContent(data))
	if err != nil {
		return created, fmt.Errorf("failed to encode %s: %w", core.ContentFile, err)
	}
	contentPath := filepath.Join(pageDir, core.ContentFile)
	if err := s.fs.WriteFile(contentPath, content, 0644); err != nil {
		return created, fmt.Errorf("failed to write %s: %w", contentPath, err)
	}
	created = append(created, contentPath)

	siteFiles, err := templates.SiteFiles()
	if err != nil {
		return created, fmt.Errorf("failed to open page skeleton: %w", err)
	}
	files, err := s.copySkeleton(siteFiles, pageDir, data, true)
	created = append(created, files...)
	if err != nil {
		return created, err
	}

	templateFiles, err := templates.TemplateFiles()
	if err != nil {
		return created, fmt.Errorf("failed to open template skeleton: %w", err)
	}
	tmplDir := filepath.Join(input.TemplatesDir, input.Name)
	if err := s.fs.MkdirAll(tmplDir, 0755); err != nil {
		return created, fmt.Errorf("failed to create template folder: %w", err)
	}
	files, err = s.copySkeleton(templateFiles, tmplDir, data, false)
	created = append(created, files...)
	return created, err
}

// rollback removes the page folder and any template files this run wrote, so
// new-page can be retried. Template files that existed before are untouched.
func (s *NewPageService) rollback(pageDir string, created []string) {
	for _, f := range created {
		if filepath.Dir(f) == pageDir {
			continue
		}
		if err := s.fs.RemoveAll(f); err != nil {
			s.cli.PrintWarning("Could not remove %s: %v", f, err)
		}
	}
	if err := s.fs.RemoveAll(pageDir); err != nil {
		s.cli.PrintWarning("Could not remove %s: %v", pageDir, err)
	}
}

// copySkeleton writes every file of src into dir. With overwrite false,
// files that already exist are kept and reported.
func (s *NewPageService) copySkeleton(src iofs.FS, dir string, data templates.TemplateData, overwrite bool) ([]string, error) {
	var created []string
	err := iofs.WalkDir(src, ".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := iofs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("failed to read skeleton file %s: %w", path, err)
		}
		name, isTemplate := templates.ProcessFilename(path)
		content = templates.ProcessContent(content, isTemplate, data)

		target := filepath.Join(dir, filepath.FromSlash(name))
		if !overwrite && s.fs.FileExists(target) {
			s.cli.PrintWarning("Keeping existing %s", target)
			return nil
		}
		if err := s.fs.WriteFile(target, content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		created = append(created, target)
		return nil
	})
	return created, err
}
