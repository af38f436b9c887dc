package project

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/flaskforge/flaskforge/internal/defs"
)

// WriteFile writes content to the slash-separated path rel under root.
// The parent directory must already exist.
func WriteFile(root, rel, content string) error {
	clean := path.Clean(rel)
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: %s", ErrInvalidPath, rel)
	}

	target := filepath.Join(root, filepath.FromSlash(clean))
	if err := os.WriteFile(target, []byte(content), defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}
