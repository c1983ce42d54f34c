// Package config provides the configuration loader for glimpse.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/glimpse/internal/core/domain"
	"go.trai.ch/glimpse/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration schema version understood by the loader.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: osFS{}}
}

// WithFileSystem returns the loader reading from fsys.
func (l *Loader) WithFileSystem(fsys FileSystem) *Loader {
	l.FS = fsys
	return l
}

// Load finds glimpse.yaml in dir or the closest parent and returns the project it describes.
func (l *Loader) Load(dir string) (domain.Project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return domain.Project{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "dir", dir)
	}

	configPath, err := l.findConfiguration(absDir)
	if err != nil {
		return domain.Project{}, err
	}

	return l.loadGlimpsefile(configPath)
}

func (l *Loader) findConfiguration(dir string) (string, error) {
	currentDir := dir
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", errors.Join(domain.ErrConfigNotFound, zerr.With(zerr.New("no config in directory hierarchy"), "dir", dir))
}

func (l *Loader) loadGlimpsefile(configPath string) (domain.Project, error) {
	var glimpsefile Glimpsefile
	if err := l.readAndUnmarshalYAML(configPath, &glimpsefile); err != nil {
		return domain.Project{}, err
	}

	if glimpsefile.Version != "" && glimpsefile.Version != SupportedVersion && l.Logger != nil {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", configPath, glimpsefile.Version, SupportedVersion))
	}

	project := domain.Project{
		Root:       resolveRoot(configPath, glimpsefile.Root),
		SearchDirs: canonicalizeDirs(glimpsefile.GraphicsPath),
	}

	if p := glimpsefile.Preview; p != nil {
		if p.Width < 0 || p.Height < 0 {
			err := zerr.With(domain.ErrInvalidPreviewSize, "width", p.Width)
			return domain.Project{}, zerr.With(zerr.With(err, "height", p.Height), "config", configPath)
		}
		project.Width = p.Width
		project.Height = p.Height
	}

	return project, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Glimpsefile) error {
	configFile, err := l.FS.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Join(domain.ErrConfigNotFound, zerr.With(err, "config", configPath))
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "config", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "config", configPath)
	}

	return nil
}

// resolveRoot determines the project root from the config file location and the
// configured root, which may be absolute or relative to the config file.
func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// canonicalizeDirs trims and deduplicates search directories, keeping their order.
func canonicalizeDirs(dirs []string) []string {
	if len(dirs) == 0 {
		return nil
	}

	result := make([]string, 0, len(dirs))
	seen := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}
	return result
}
