package template

import "fmt"

// Activation commands for the generated project's virtual environment.
const (
	WindowsActivate = `venv\Scripts\activate`
	POSIXActivate   = "source venv/bin/activate"
)

// NextSteps is the data for the post-generation instructions.
type NextSteps struct {
	Name            string // Project name.
	Dir             string // Directory the user should cd into.
	ActivateCommand string // Shell command that activates the virtualenv.
}

// ActivateCommand returns the virtualenv activation command for goos.
func ActivateCommand(goos string) string {
	if goos == "windows" {
		return WindowsActivate
	}
	return POSIXActivate
}

// RenderNextSteps renders the embedded next-steps template.
func RenderNextSteps(data NextSteps) (string, error) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		return "", fmt.Errorf("load embedded templates: %w", err)
	}
	// Name and Dir are user input and may contain '$'.
	out, err := NewRenderer(fsys, WithoutTokenCheck()).Render(NextStepsTemplate, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
