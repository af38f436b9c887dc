package config

// EnvPreset names the environment variable holding a default preset path.
const EnvPreset = "FLASKFORGE_PRESET"

// Preset pre-supplies project options. Empty strings and nil flags mean
// "not supplied": the option is prompted for or takes its default.
type Preset struct {
	Name     string `yaml:"name"`
	Database string `yaml:"database"`
	Auth     *bool  `yaml:"auth"`
	API      *bool  `yaml:"api"`
}

// IsEmpty reports whether the preset supplies nothing.
func (p *Preset) IsEmpty() bool {
	return p == nil || (p.Name == "" && p.Database == "" && p.Auth == nil && p.API == nil)
}
