package config

// Cachefile represents the structure of the cachet.yaml configuration file.
type Cachefile struct {
	Cache CacheDTO `yaml:"cache"`
	Log   LogDTO   `yaml:"log"`
}

// CacheDTO holds the cache section. Pointer fields distinguish unset from zero values.
type CacheDTO struct {
	Root          string `yaml:"root"`
	Enabled       *bool  `yaml:"enabled"`
	FormatVersion string `yaml:"formatVersion"`
	HashLength    *int   `yaml:"hashLength"`
}

// LogDTO holds the log section.
type LogDTO struct {
	Verbose bool `yaml:"verbose"`
	JSON    bool `yaml:"json"`
}
