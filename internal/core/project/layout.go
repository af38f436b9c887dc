package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flaskforge/flaskforge/internal/defs"
)

// projectDirs lists the directories created in every project, parents
// before children.
var projectDirs = []string{
	defs.AppDir,
	defs.TemplatesDir,
	defs.StaticDir,
	defs.CSSDir,
	defs.JSDir,
	defs.ModelsDir,
	defs.ViewsDir,
	defs.TestsDir,
}

// ProjectDirs returns a copy of the fixed directory layout.
func ProjectDirs() []string {
	return append([]string(nil), projectDirs...)
}

// createProjectDirs creates the fixed layout under root. Directories are
// created one level at a time, so an existing entry is an error. On failure
// the directories created so far are left in place.
func createProjectDirs(root string, result *Result, step func(string)) error {
	for _, dir := range projectDirs {
		dirPath := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.Mkdir(dirPath, defs.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", dirPath, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
		step(dir)
	}
	return nil
}
