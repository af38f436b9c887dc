package template

import (
	"strings"

	"github.com/flaskforge/flaskforge/internal/defs"
	"github.com/flaskforge/flaskforge/pkg/models"
)

// Generator maps a project spec to the contents of one file.
// Generators are pure and never fail.
type Generator func(spec models.ProjectSpec) string

// File is a generated file ready to be written under the project root.
type File struct {
	Path    string // Slash-separated path relative to the project root.
	Content string
}

// fileGenerators lists every generated file in write order.
var fileGenerators = []struct {
	path string
	gen  Generator
}{
	{defs.InitModule, InitModule},
	{defs.ConfigModule, ConfigModule},
	{defs.RunScript, RunScript},
	{defs.GitIgnore, GitIgnore},
	{defs.Requirements, Requirements},
}

// Files runs every generator against spec.
func Files(spec models.ProjectSpec) []File {
	files := make([]File, 0, len(fileGenerators))
	for _, fg := range fileGenerators {
		files = append(files, File{Path: fg.path, Content: fg.gen(spec)})
	}
	return files
}

// InitModule generates app/__init__.py.
func InitModule(spec models.ProjectSpec) string {
	var b strings.Builder
	b.WriteString("from flask import Flask\n")
	b.WriteString("from config import Config\n")

	if spec.Database.Enabled() {
		b.WriteString("from flask_sqlalchemy import SQLAlchemy\n")
		b.WriteString("from flask_migrate import Migrate\n\n")
		b.WriteString("db = SQLAlchemy()\n")
		b.WriteString("migrate = Migrate()\n")
	}

	if spec.Auth {
		b.WriteString("from flask_login import LoginManager\n")
		b.WriteString("login_manager = LoginManager()\n")
	}

	b.WriteString("\napp = Flask(__name__)\n")
	b.WriteString("app.config.from_object(Config)\n\n")

	if spec.Database.Enabled() {
		b.WriteString("db.init_app(app)\n")
		b.WriteString("migrate.init_app(app, db)\n")
	}

	if spec.Auth {
		b.WriteString("login_manager.init_app(app)\n")
		b.WriteString("login_manager.login_view = 'auth.login'\n")
	}

	b.WriteString("\nfrom app import views\n")
	return b.String()
}

// ConfigModule generates config.py.
func ConfigModule(spec models.ProjectSpec) string {
	var b strings.Builder
	b.WriteString("import os\n")
	b.WriteString("from pathlib import Path\n\n")
	b.WriteString("class Config:\n")
	b.WriteString("    SECRET_KEY = os.environ.get('SECRET_KEY') or 'your-secret-key-here'\n")

	if !spec.Database.Enabled() {
		return b.String()
	}

	if spec.Database == models.DatabaseSQLite {
		b.WriteString("    SQLALCHEMY_DATABASE_URI = os.environ.get('DATABASE_URL') or \\\n")
		b.WriteString("        'sqlite:///' + str(Path(__file__).parent / 'app.db')\n")
	} else {
		b.WriteString("    SQLALCHEMY_DATABASE_URI = os.environ.get('DATABASE_URL')\n")
	}
	b.WriteString("    SQLALCHEMY_TRACK_MODIFICATIONS = False\n")
	return b.String()
}

// RunScript generates run.py. The content does not depend on spec.
func RunScript(models.ProjectSpec) string {
	return runScript
}

// GitIgnore generates .gitignore. The content does not depend on spec.
func GitIgnore(models.ProjectSpec) string {
	return gitIgnore
}

// baseRequirements are installed by every generated project.
var baseRequirements = []string{
	"flask",
	"python-dotenv",
	"click",
}

// RequirementsList returns the pip packages for spec in install order.
func RequirementsList(spec models.ProjectSpec) []string {
	reqs := append([]string(nil), baseRequirements...)

	if spec.Database.Enabled() {
		reqs = append(reqs, "flask-sqlalchemy", "flask-migrate")
		switch spec.Database {
		case models.DatabasePostgreSQL:
			reqs = append(reqs, "psycopg2-binary")
		case models.DatabaseMySQL:
			reqs = append(reqs, "mysqlclient")
		}
	}

	if spec.Auth {
		reqs = append(reqs, "flask-login")
	}
	if spec.API {
		reqs = append(reqs, "flask-restful")
	}
	return reqs
}

// Requirements generates requirements.txt: one package per line,
// without a trailing newline.
func Requirements(spec models.ProjectSpec) string {
	return strings.Join(RequirementsList(spec), "\n")
}
