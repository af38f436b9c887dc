package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run asks each question and returns the answers merged over seed.
// Each question runs as its own huh.Form. Callers drop questions that are
// already answered with Without.
func Run(questions []Question, seed *WizardResult) (*WizardResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &WizardResult{}
	if seed != nil {
		*result = *seed
	}
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]

		form := huh.NewForm(buildQuestionGroup(q, result)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// ConfirmOverwrite asks whether the existing project directory may be
// deleted and recreated. The default answer is no.
func ConfirmOverwrite(name string) (bool, error) {
	ok := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(OverwritePrompt(name)).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	)).WithTheme(newWizardTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("overwrite prompt: %w", err)
	}
	return ok, nil
}

// OverwritePrompt is the overwrite confirmation question for name.
func OverwritePrompt(name string) string {
	return fmt.Sprintf("Directory %s already exists. Overwrite?", name)
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, result *WizardResult) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, result)
	case QuestionTypeInput:
		field = buildInputField(q, result)
	case QuestionTypeConfirm:
		field = buildConfirmField(q, result)
	}

	return huh.NewGroup(field)
}

// buildSelectField creates a huh.Select field for a select-type question.
func buildSelectField(q *Question, result *WizardResult) *huh.Select[string] {
	selected := q.Default
	if selected != "" {
		saveAnswer(q.ID, selected, result)
	}

	// Static Options() with no Height() keeps the viewport sized to the
	// option count, so huh never scrolls options out of view.
	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	id := q.ID
	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected).
		Validate(func(val string) error {
			saveAnswer(id, val, result)
			return nil
		})
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, result *WizardResult) *huh.Input {
	value := q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	id := q.ID
	required := q.Required
	defVal := q.Default
	return inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" && defVal != "" {
			v = defVal
		}
		if required && v == "" {
			return errors.New("this field is required")
		}
		saveAnswer(id, v, result)
		return nil
	})
}

// buildConfirmField creates a huh.Confirm field for a yes/no question.
func buildConfirmField(q *Question, result *WizardResult) *huh.Confirm {
	value, _ := strconv.ParseBool(q.Default)
	saveAnswer(q.ID, strconv.FormatBool(value), result)

	id := q.ID
	return huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Validate(func(val bool) error {
			saveAnswer(id, strconv.FormatBool(val), result)
			return nil
		})
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *WizardResult) {
	switch id {
	case IDProjectName:
		result.ProjectName = value
	case IDDatabase:
		result.Database = value
	case IDAuth:
		result.Auth = value == "true"
	case IDAPI:
		result.API = value == "true"
	}
}
