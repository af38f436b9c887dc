// Package wizard provides the interactive huh-based prompts that collect
// flaskforge project options.
package wizard

import "errors"

// Question IDs.
const (
	IDProjectName = "project_name"
	IDDatabase    = "database"
	IDAuth        = "auth"
	IDAPI         = "api"
)

// WizardResult holds the user's answers.
type WizardResult struct {
	ProjectName string // Project name (required)
	Database    string // sqlite, postgresql, mysql or none
	Auth        bool   // Include the Flask-Login setup
	API         bool   // Include Flask-RESTful
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string       // Unique identifier
	Type        QuestionType // Select, Input or Confirm
	Title       string       // Question title
	Description string       // Additional description
	Options     []Option     // Options for select questions
	Default     string       // Default value ("true"/"false" for confirms)
	Required    bool         // Whether the field is required
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
