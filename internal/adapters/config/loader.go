// Package config provides the configuration loader for cachet.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/cachet/internal/build"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fs     afero.Fs
	Logger ports.Logger
}

// NewLoader creates a new Loader reading from fs.
func NewLoader(fs afero.Fs, logger ports.Logger) *Loader {
	return &Loader{fs: fs, Logger: logger}
}

// Load reads the configuration at path, or cachet.yaml in the working directory when path
// is empty. A missing file yields the defaults. A relative cache root is resolved against
// the directory of the config file.
func (l *Loader) Load(path string) (domain.Config, error) {
	if path == "" {
		path = domain.ConfigFileName
	}

	cfg := domain.DefaultConfig(build.Version)

	var file Cachefile
	found, err := l.readAndUnmarshalYAML(path, &file)
	if err != nil {
		return domain.Config{}, err
	}
	if !found {
		l.Logger.Debug("no config file at " + path + ", using defaults")
		return cfg, nil
	}

	if file.Cache.Root != "" {
		cfg.Root = resolveRoot(path, file.Cache.Root)
	} else {
		cfg.Root = resolveRoot(path, domain.DefaultCacheRoot())
	}
	if file.Cache.Enabled != nil {
		cfg.Enabled = *file.Cache.Enabled
	}
	if file.Cache.FormatVersion != "" {
		cfg.FormatVersion = file.Cache.FormatVersion
	}
	if file.Cache.HashLength != nil {
		n := *file.Cache.HashLength
		if n < 1 || n > domain.MaxHashLength {
			return domain.Config{}, zerr.With(zerr.With(
				zerr.Wrap(domain.ErrInvalidHashLength, "invalid cache configuration"),
				"hash_length", n), "path", path)
		}
		cfg.HashLength = n
	}
	cfg.Verbose = file.Log.Verbose
	cfg.JSON = file.Log.JSON

	return cfg, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(configPath), configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file into target. It reports false when the file does not exist.
func (l *Loader) readAndUnmarshalYAML(path string, target *Cachefile) (bool, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return true, nil
}
