package config

import (
	"strings"

	"github.com/flaskforge/flaskforge/pkg/models"
)

// Validate checks preset values. The database, when set, must be one of
// the supported values; a name, when set, must not be blank.
func Validate(p *Preset) error {
	var errs []ValidationError

	if p.Name != "" && strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "must not be blank",
			Value:   p.Name,
			Wrapped: models.ErrEmptyName,
		})
	}

	if p.Database != "" {
		db, err := models.ParseDatabase(p.Database)
		if err != nil {
			errs = append(errs, ValidationError{
				Field:   "database",
				Message: "must be one of: " + strings.Join(models.DatabaseNames(), ", "),
				Value:   p.Database,
				Wrapped: models.ErrInvalidDatabase,
			})
		} else {
			p.Database = string(db)
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
