package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/flaskforge/flaskforge/internal/cli/wizard"
	"github.com/flaskforge/flaskforge/internal/config"
	"github.com/flaskforge/flaskforge/internal/core/project"
	"github.com/flaskforge/flaskforge/internal/template"
	"github.com/flaskforge/flaskforge/internal/ui"
	"github.com/flaskforge/flaskforge/pkg/models"
)

// ErrNameRequired is returned when no project name is available and
// prompting is not possible.
var ErrNameRequired = errors.New("project name required: pass --name or set name in the preset")

// runCreate collects the project options, scaffolds the project and
// prints the next steps.
func runCreate(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	logger := deps.Logger
	if getBoolFlag(cmd, "verbose") {
		logger = newVerboseLogger(cmd.ErrOrStderr())
	}

	headless := deps.Headless.IsHeadless() || getBoolFlag(cmd, "non-interactive")

	spec, err := collectSpec(cmd, logger, headless)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
			return nil
		}
		return err
	}

	confirmer := overwriteConfirmer(getBoolFlag(cmd, "force"), headless, logger)
	scaffolder := project.NewScaffolder(confirmer, logger)

	out := cmd.OutOrStdout()
	styled := !headless && ui.IsTerminal(out)

	// The bar starts on the first step so it never overlaps the
	// overwrite prompt.
	var bar ui.ProgressBar
	opts := project.Options{
		ParentDir: getStringFlag(cmd, "dir"),
		Spec:      spec,
		OnStep: func(path string) {
			if bar == nil {
				w := cmd.ErrOrStderr()
				if styled {
					w = out
				}
				bar = ui.NewProgressBar(w, styled, "Scaffolding", project.StepCount(spec))
			}
			bar.SetTitle(path)
			bar.Increment(1)
		},
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := scaffolder.Scaffold(ctx, opts)
	if bar != nil {
		bar.Done()
	}
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
			return nil
		}
		return fmt.Errorf("create project: %w", err)
	}

	if result.Outcome == project.OutcomeAborted {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s Directory %s left unchanged.\n", symWarning(), result.Root)
		return nil
	}

	return printSummary(out, spec, result, opts.ParentDir != "", styled)
}

// collectSpec merges flags, preset and prompts into a ProjectSpec.
// Precedence per field: flag, preset, prompt, default.
func collectSpec(cmd *cobra.Command, logger *slog.Logger, headless bool) (models.ProjectSpec, error) {
	presetPath := config.ResolvePresetPath(getStringFlag(cmd, "preset"))
	preset, err := deps.Presets.Load(presetPath)
	if err != nil {
		return models.ProjectSpec{}, fmt.Errorf("load preset: %w", err)
	}

	seed := &wizard.WizardResult{Database: string(models.DatabaseNone)}
	var answered []string

	if name := models.NormalizeName(getStringFlag(cmd, "name")); name != "" {
		seed.ProjectName = name
		answered = append(answered, wizard.IDProjectName)
	} else if name := models.NormalizeName(preset.Name); name != "" {
		seed.ProjectName = name
		answered = append(answered, wizard.IDProjectName)
	}

	if db := getStringFlag(cmd, "database"); db != "" {
		seed.Database = db
		answered = append(answered, wizard.IDDatabase)
	} else if preset.Database != "" {
		seed.Database = preset.Database
		answered = append(answered, wizard.IDDatabase)
	}

	if v := firstSet(getToggleFlag(cmd, "auth"), preset.Auth); v != nil {
		seed.Auth = *v
		answered = append(answered, wizard.IDAuth)
	}
	if v := firstSet(getToggleFlag(cmd, "api"), preset.API); v != nil {
		seed.API = *v
		answered = append(answered, wizard.IDAPI)
	}

	result := seed
	if remaining := wizard.Without(wizard.DefaultQuestions(), answered...); len(remaining) > 0 {
		if headless {
			if seed.ProjectName == "" {
				return models.ProjectSpec{}, ErrNameRequired
			}
			logger.Debug("headless mode, using defaults for unanswered options", "count", len(remaining))
		} else {
			result, err = deps.Prompter.Ask(remaining, seed)
			if err != nil {
				return models.ProjectSpec{}, err
			}
		}
	}

	db, err := models.ParseDatabase(result.Database)
	if err != nil {
		return models.ProjectSpec{}, err
	}
	spec := models.ProjectSpec{
		Name:     models.NormalizeName(result.ProjectName),
		Database: db,
		Auth:     result.Auth,
		API:      result.API,
	}
	if err := spec.Validate(); err != nil {
		return models.ProjectSpec{}, err
	}

	logger.Debug("collected project options",
		"name", spec.Name,
		"database", spec.Database,
		"auth", spec.Auth,
		"api", spec.API,
		"preset", presetPath,
	)
	return spec, nil
}

// firstSet returns the first non-nil value.
func firstSet(vals ...*bool) *bool {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

// overwriteConfirmer picks how an existing directory is handled: --force
// always overwrites, headless runs never do, otherwise the user is asked.
func overwriteConfirmer(force, headless bool, logger *slog.Logger) project.Confirmer {
	return project.ConfirmFunc(func(name string) (bool, error) {
		switch {
		case force:
			logger.Debug("overwriting existing directory (--force)", "name", name)
			return true, nil
		case headless:
			logger.Warn("directory exists; pass --force to overwrite", "name", name)
			return false, nil
		default:
			return deps.Prompter.ConfirmOverwrite(name)
		}
	})
}

// printSummary prints the project options and the next-step instructions.
func printSummary(w io.Writer, spec models.ProjectSpec, result *project.Result, customDir, styled bool) error {
	dir := spec.Name
	if customDir {
		dir = result.Root
	}

	steps, err := template.RenderNextSteps(template.NextSteps{
		Name:            spec.Name,
		Dir:             dir,
		ActivateCommand: template.ActivateCommand(deps.GOOS),
	})
	if err != nil {
		return fmt.Errorf("render next steps: %w", err)
	}

	details := renderKeyValueLines([]kvPair{
		{"Location", result.Root},
		{"Database", spec.Database.String()},
		{"Auth", yesNo(spec.Auth)},
		{"API", yesNo(spec.API)},
		{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
	})
	if result.Replaced {
		details += "\n" + cliWarn.Render("Replaced existing directory")
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, ui.RenderMarkdown(steps, styled))
	_, _ = fmt.Fprintln(w, renderSuccessCard("Project options", details))
	return nil
}
