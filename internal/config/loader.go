package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxPresetSize bounds the preset file size.
const maxPresetSize = 1 << 20

// Loader reads preset files from disk.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// ResolvePresetPath picks the preset path: the flag value if set,
// otherwise FLASKFORGE_PRESET. Empty means no preset.
func ResolvePresetPath(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(EnvPreset))
}

// Load reads, decodes and validates the preset at path.
// An empty path returns an empty preset.
func (l *Loader) Load(path string) (*Preset, error) {
	if path == "" {
		return &Preset{}, nil
	}
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("stat preset %s: %w", path, err)
	}
	if info.Size() > maxPresetSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrPresetTooLarge, path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}

	preset, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}

	l.logger.Debug("loaded preset", "path", path,
		"name", preset.Name,
		"database", preset.Database,
	)
	return preset, nil
}

// Parse decodes and validates preset YAML. Unknown keys are rejected.
func Parse(data []byte) (*Preset, error) {
	preset := &Preset{}
	if len(bytes.TrimSpace(data)) == 0 {
		return preset, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(preset); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	if err := Validate(preset); err != nil {
		return nil, err
	}
	return preset, nil
}
