package defs

// Generated file names, relative to the project root.
const (
	// InitModule is the Flask application package initializer.
	InitModule = "app/__init__.py"

	// ConfigModule holds the Flask Config class.
	ConfigModule = "config.py"

	// RunScript starts the development server.
	RunScript = "run.py"

	// GitIgnore is the VCS ignore file.
	GitIgnore = ".gitignore"

	// Requirements is the pip dependency list.
	Requirements = "requirements.txt"
)

// Directory names created inside every generated project.
const (
	AppDir       = "app"
	TemplatesDir = "app/templates"
	StaticDir    = "app/static"
	CSSDir       = "app/static/css"
	JSDir        = "app/static/js"
	ModelsDir    = "app/models"
	ViewsDir     = "app/views"
	TestsDir     = "tests"
)

// Permissions for generated files and directories.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
