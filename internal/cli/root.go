package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flaskforge/flaskforge/internal/config"
	"github.com/flaskforge/flaskforge/pkg/models"
	"github.com/flaskforge/flaskforge/pkg/version"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flaskforge",
		Short: "Scaffold a new Flask project",
		Long: `flaskforge creates a Flask project skeleton: the app package with
templates, static, models and views directories, a tests directory,
config.py, run.py, .gitignore and requirements.txt.

Options not given as flags are read from a preset file (--preset or
` + config.EnvPreset + `) and otherwise prompted for.

Examples:
  flaskforge                                   Prompt for everything
  flaskforge --name blog --database postgresql --auth --no-api
  flaskforge --preset team.yaml --non-interactive`,
		Args:          cobra.NoArgs,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		PreRunE:       validateFlags,
		RunE:          runCreate,
		SilenceErrors: false,
	}

	cmd.SetVersionTemplate(fmt.Sprintf("flaskforge %s\n", version.GetFullVersion()))

	f := cmd.Flags()
	f.String("name", "", "Name of the Flask project")
	f.String("database", "", "Database to use: sqlite, postgresql, mysql or none")
	f.Bool("auth", false, "Include authentication system")
	f.Bool("no-auth", false, "Do not include authentication system")
	f.Bool("api", false, "Include REST API setup")
	f.Bool("no-api", false, "Do not include REST API setup")
	f.String("dir", "", "Parent directory for the project (default: current directory)")
	f.String("preset", "", "YAML file pre-supplying name, database, auth and api")
	f.Bool("non-interactive", false, "Never prompt; use flags, preset and defaults")
	f.Bool("force", false, "Overwrite an existing project directory without asking")
	f.BoolP("verbose", "v", false, "Log each scaffolding step to stderr")

	cmd.MarkFlagsMutuallyExclusive("auth", "no-auth")
	cmd.MarkFlagsMutuallyExclusive("api", "no-api")

	return cmd
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return rootCmd.Execute()
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getToggleFlag resolves a --x/--no-x pair. It returns nil when neither
// flag was given.
func getToggleFlag(cmd *cobra.Command, name string) *bool {
	if cmd.Flags().Changed(name) {
		v := getBoolFlag(cmd, name)
		return &v
	}
	if cmd.Flags().Changed("no-" + name) {
		v := !getBoolFlag(cmd, "no-"+name)
		return &v
	}
	return nil
}

// validateFlags validates flag values before execution.
func validateFlags(cmd *cobra.Command, _ []string) error {
	if db := getStringFlag(cmd, "database"); db != "" {
		if _, err := models.ParseDatabase(db); err != nil {
			return fmt.Errorf("invalid --database value %q: must be one of: sqlite, postgresql, mysql, none", db)
		}
	}
	if cmd.Flags().Changed("name") && models.NormalizeName(getStringFlag(cmd, "name")) == "" {
		return fmt.Errorf("invalid --name value: must not be empty")
	}
	return nil
}
