package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/flaskforge/flaskforge/internal/defs"
	"github.com/flaskforge/flaskforge/internal/template"
	"github.com/flaskforge/flaskforge/pkg/models"
)

// Outcome is the terminal state of a scaffolding run.
type Outcome int

const (
	// OutcomeCreated means the project tree was fully written.
	OutcomeCreated Outcome = iota
	// OutcomeAborted means the user declined to overwrite an existing
	// directory and nothing was changed.
	OutcomeAborted
)

// String returns a lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeAborted:
		return "aborted"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Confirmer decides whether an existing project directory may be replaced.
type Confirmer interface {
	// ConfirmOverwrite is called with the project name when its directory
	// already exists. Returning false aborts the run without changes.
	ConfirmOverwrite(name string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(name string) (bool, error)

// ConfirmOverwrite calls f(name).
func (f ConfirmFunc) ConfirmOverwrite(name string) (bool, error) {
	return f(name)
}

// Options configures a scaffolding run.
type Options struct {
	ParentDir string             // Directory the project is created in. Defaults to ".".
	Spec      models.ProjectSpec // What to generate.

	// OnStep, if set, is called after each directory or file is created
	// with its slash-separated path relative to the root.
	OnStep func(path string)
}

// StepCount returns how many OnStep calls a successful run makes for spec.
func StepCount(spec models.ProjectSpec) int {
	return len(projectDirs) + len(template.Files(spec))
}

// Result summarizes a scaffolding run.
type Result struct {
	Outcome      Outcome
	Root         string   // Project root directory.
	Replaced     bool     // True if an existing directory was removed first.
	CreatedDirs  []string // Slash-separated, relative to Root.
	CreatedFiles []string // Slash-separated, relative to Root.
}

// Scaffolder materializes a project skeleton on disk.
type Scaffolder interface {
	// Scaffold runs the overwrite check, builds the directory tree and
	// writes every generated file. Filesystem errors are returned as-is
	// (wrapped) and leave any partially written tree behind.
	Scaffold(ctx context.Context, opts Options) (*Result, error)
}

type scaffolder struct {
	confirmer Confirmer
	logger    *slog.Logger
}

// NewScaffolder creates a Scaffolder. A nil confirmer declines every
// overwrite; a nil logger discards output.
func NewScaffolder(confirmer Confirmer, logger *slog.Logger) Scaffolder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &scaffolder{confirmer: confirmer, logger: logger}
}

// Scaffold creates the project described by opts.
func (s *scaffolder) Scaffold(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	parent := opts.ParentDir
	if parent == "" {
		parent = "."
	}
	root := filepath.Clean(filepath.Join(parent, opts.Spec.Name))
	result := &Result{Outcome: OutcomeCreated, Root: root}

	s.logger.Info("scaffolding project",
		"root", root,
		"database", opts.Spec.Database,
		"auth", opts.Spec.Auth,
		"api", opts.Spec.API,
	)

	// Step 1: Overwrite check
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	proceed, err := s.prepareRoot(opts.Spec.Name, root, result)
	if err != nil {
		return nil, err
	}
	if !proceed {
		s.logger.Info("overwrite declined, nothing changed", "root", root)
		result.Outcome = OutcomeAborted
		return result, nil
	}

	// Step 2: Directory tree
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.Mkdir(root, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create project directory: %w", err)
	}
	step := opts.OnStep
	if step == nil {
		step = func(string) {}
	}
	if err := createProjectDirs(root, result, step); err != nil {
		return nil, fmt.Errorf("create directory structure: %w", err)
	}

	// Step 3: Generated files
	for _, f := range template.Files(opts.Spec) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := WriteFile(root, f.Path, f.Content); err != nil {
			return nil, err
		}
		result.CreatedFiles = append(result.CreatedFiles, f.Path)
		step(f.Path)
		s.logger.Debug("wrote file", "path", f.Path, "bytes", len(f.Content))
	}

	s.logger.Info("project scaffolded",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)
	return result, nil
}

// prepareRoot handles an existing project directory. It returns false if
// the user declined the overwrite.
func (s *scaffolder) prepareRoot(name, root string, result *Result) (bool, error) {
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	if s.confirmer == nil {
		return false, nil
	}
	ok, err := s.confirmer.ConfirmOverwrite(name)
	if err != nil {
		return false, fmt.Errorf("confirm overwrite: %w", err)
	}
	if !ok {
		return false, nil
	}

	s.logger.Warn("removing existing project directory", "root", root)
	if err := os.RemoveAll(root); err != nil {
		return false, fmt.Errorf("remove %s: %w", root, err)
	}
	result.Replaced = true
	return true, nil
}
