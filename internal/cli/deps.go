// Package cli provides the Cobra command and dependency wiring for the
// flaskforge CLI.
package cli

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/flaskforge/flaskforge/internal/cli/wizard"
	"github.com/flaskforge/flaskforge/internal/config"
	"github.com/flaskforge/flaskforge/internal/ui"
)

// Prompter asks the user for project options and overwrite decisions.
type Prompter interface {
	// Ask runs the given questions, starting from seed.
	Ask(questions []wizard.Question, seed *wizard.WizardResult) (*wizard.WizardResult, error)
	// ConfirmOverwrite asks whether the existing directory name may be replaced.
	ConfirmOverwrite(name string) (bool, error)
}

// huhPrompter is the terminal Prompter backed by the wizard package.
type huhPrompter struct{}

func (huhPrompter) Ask(questions []wizard.Question, seed *wizard.WizardResult) (*wizard.WizardResult, error) {
	return wizard.Run(questions, seed)
}

func (huhPrompter) ConfirmOverwrite(name string) (bool, error) {
	return wizard.ConfirmOverwrite(name)
}

// Dependencies holds the services used by the command. It is the only
// place concrete implementations are chosen; tests replace it via SetDeps.
type Dependencies struct {
	Logger   *slog.Logger
	Headless *ui.HeadlessManager
	Prompter Prompter
	Presets  *config.Loader
	GOOS     string // Host OS used for the activation instructions.
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates the production dependencies.
func InitDependencies() {
	// CLI output goes through cmd.Out; logs are discarded unless --verbose.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps = &Dependencies{
		Logger:   logger,
		Headless: ui.NewHeadlessManager(),
		Prompter: huhPrompter{},
		Presets:  config.NewLoader(logger),
		GOOS:     runtime.GOOS,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
