// Package config provides the configuration loader for cruncher.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	defaultMaxBytes  = int64(1 << 20) // 1 MiB
	defaultTimeout   = 10 * time.Second
	defaultMaxAge    = 30 * time.Minute
	defaultRetention = 14 * 24 * time.Hour
)

// Loader reads cruncher.yaml and produces domain.Settings.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load walks from cwd upwards until it finds cruncher.yaml and parses it.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(configPath)
}

// LoadFile parses the configuration file at the given path.
func (l *Loader) LoadFile(configPath string) (*domain.Settings, error) {
	//nolint:gosec // Path discovered by walking from the working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return l.toSettings(filepath.Dir(configPath), &file)
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigNotFound.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) toSettings(baseDir string, file *File) (*domain.Settings, error) {
	settings := &domain.Settings{
		Security: domain.SecurityPolicy{
			AllowRemote: file.Security.AllowRemote,
			Whitelist:   file.Security.Whitelist,
			MaxBytes:    file.Security.MaxBytes,
			Timeout:     time.Duration(file.Security.TimeoutMs) * time.Millisecond,
		},
		CacheMaxAge:       time.Duration(file.Cache.MaxAgeMinutes) * time.Minute,
		ArtifactRetention: time.Duration(file.Artifact.RetentionDays) * 24 * time.Hour,
	}

	for _, root := range file.Roots {
		if !filepath.IsAbs(root) {
			root = filepath.Join(baseDir, root)
		}
		if _, err := os.Stat(root); err != nil {
			l.Logger.Warn(fmt.Sprintf("configured root %s does not exist, skipping", root))
			continue
		}
		settings.Roots = append(settings.Roots, root)
	}

	if settings.Security.MaxBytes <= 0 {
		settings.Security.MaxBytes = defaultMaxBytes
	}
	if settings.Security.Timeout <= 0 {
		settings.Security.Timeout = defaultTimeout
	}
	if settings.CacheMaxAge <= 0 {
		settings.CacheMaxAge = defaultMaxAge
	}
	if settings.ArtifactRetention <= 0 {
		settings.ArtifactRetention = defaultRetention
	}

	switch file.Cache.Priority {
	case "", "normal":
		settings.CachePriority = domain.PriorityNormal
	case "high":
		settings.CachePriority = domain.PriorityHigh
	default:
		return nil, zerr.With(domain.ErrConfigParseFailed, "priority", file.Cache.Priority)
	}

	if file.Artifact.Dir != "" {
		dir := file.Artifact.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		settings.ArtifactDir = dir
	}

	return settings, nil
}
