package models

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Database identifies the database backend wired into a generated project.
type Database string

const (
	DatabaseSQLite     Database = "sqlite"
	DatabasePostgreSQL Database = "postgresql"
	DatabaseMySQL      Database = "mysql"
	DatabaseNone       Database = "none"
)

var (
	// ErrInvalidDatabase indicates a database value outside the supported set.
	ErrInvalidDatabase = errors.New("invalid database: must be one of sqlite, postgresql, mysql, none")

	// ErrEmptyName indicates a project spec without a name.
	ErrEmptyName = errors.New("project name must not be empty")

	// ErrInvalidName indicates a name that resolves to the parent
	// directory or outside it.
	ErrInvalidName = errors.New("project name must name a directory inside the parent directory")
)

// Databases returns every supported database in display order.
func Databases() []Database {
	return []Database{DatabaseSQLite, DatabasePostgreSQL, DatabaseMySQL, DatabaseNone}
}

// DatabaseNames returns the string form of Databases.
func DatabaseNames() []string {
	dbs := Databases()
	names := make([]string, len(dbs))
	for i, db := range dbs {
		names[i] = string(db)
	}
	return names
}

// IsValid reports whether d is one of the supported databases.
func (d Database) IsValid() bool {
	switch d {
	case DatabaseSQLite, DatabasePostgreSQL, DatabaseMySQL, DatabaseNone:
		return true
	}
	return false
}

// Enabled reports whether the project uses a database at all.
func (d Database) Enabled() bool {
	return d != DatabaseNone
}

// String returns the database identifier.
func (d Database) String() string {
	return string(d)
}

var foldCaser = cases.Fold()

// ParseDatabase converts user input to a Database.
// Matching ignores case and surrounding whitespace.
func ParseDatabase(s string) (Database, error) {
	v := foldCaser.String(norm.NFC.String(strings.TrimSpace(s)))
	d := Database(v)
	if !d.IsValid() {
		return "", fmt.Errorf("%w (got %q)", ErrInvalidDatabase, s)
	}
	return d, nil
}

// ProjectSpec is the immutable set of options a project is generated from.
type ProjectSpec struct {
	Name     string   `yaml:"name" json:"name"`
	Database Database `yaml:"database" json:"database"`
	Auth     bool     `yaml:"auth" json:"auth"`
	API      bool     `yaml:"api" json:"api"`
}

// Validate checks that the spec has a name and a supported database.
func (s ProjectSpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if escapesParent(s.Name) {
		return fmt.Errorf("%w (got %q)", ErrInvalidName, s.Name)
	}
	if !s.Database.IsValid() {
		return fmt.Errorf("%w (got %q)", ErrInvalidDatabase, string(s.Database))
	}
	return nil
}

// escapesParent reports whether joining name onto a parent directory
// yields the parent itself or a path outside it.
func escapesParent(name string) bool {
	c := filepath.Clean(strings.TrimSpace(name))
	return c == "." || c == ".." || strings.HasPrefix(c, ".."+string(filepath.Separator))
}

// NormalizeName trims the name and puts it in Unicode NFC form so the
// same project name always maps to the same directory.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
