package wizard

import (
	"slices"
	"strconv"

	"github.com/flaskforge/flaskforge/pkg/models"
)

// databaseDescriptions annotates each database option.
var databaseDescriptions = map[models.Database]string{
	models.DatabaseSQLite:     "Local file database, no server needed",
	models.DatabasePostgreSQL: "Uses psycopg2-binary and DATABASE_URL",
	models.DatabaseMySQL:      "Uses mysqlclient and DATABASE_URL",
	models.DatabaseNone:       "No ORM or migrations",
}

// DefaultQuestions returns the project option questions in prompt order:
// 1. Project name
// 2. Database
// 3. Authentication
// 4. REST API
func DefaultQuestions() []Question {
	// Default option must be first: huh scrolls the viewport to the
	// selected index and would hide options above it.
	dbOrder := []models.Database{
		models.DatabaseNone,
		models.DatabaseSQLite,
		models.DatabasePostgreSQL,
		models.DatabaseMySQL,
	}
	dbOptions := make([]Option, 0, len(dbOrder))
	for _, db := range dbOrder {
		dbOptions = append(dbOptions, Option{
			Label: db.String(),
			Value: db.String(),
			Desc:  databaseDescriptions[db],
		})
	}

	return []Question{
		// 1. Project Name
		{
			ID:          IDProjectName,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "A directory with this name is created in the current directory.",
			Required:    true,
		},
		// 2. Database
		{
			ID:          IDDatabase,
			Type:        QuestionTypeSelect,
			Title:       "Database",
			Description: "Adds Flask-SQLAlchemy and Flask-Migrate unless none.",
			Options:     dbOptions,
			Default:     models.DatabaseNone.String(),
			Required:    true,
		},
		// 3. Auth
		{
			ID:          IDAuth,
			Type:        QuestionTypeConfirm,
			Title:       "Include authentication system?",
			Description: "Wires Flask-Login's LoginManager into the app.",
			Default:     strconv.FormatBool(false),
		},
		// 4. API
		{
			ID:          IDAPI,
			Type:        QuestionTypeConfirm,
			Title:       "Include REST API setup?",
			Description: "Adds Flask-RESTful to the requirements.",
			Default:     strconv.FormatBool(false),
		},
	}
}

// questionByID returns the question with the given ID, or nil.
func questionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}

// Without returns questions minus those whose ID is in answered.
func Without(questions []Question, answered ...string) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if !slices.Contains(answered, q.ID) {
			out = append(out, q)
		}
	}
	return out
}
