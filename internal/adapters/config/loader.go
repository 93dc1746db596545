// Package config provides the configuration loader for podfiler.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/podfiler/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the configuration file looked up when none is given.
	DefaultFilename = "podfiler.yaml"

	currentVersion = "1"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path.
// Relative lock and output paths are resolved against the directory of the file.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file Podfilerfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	switch file.Version {
	case currentVersion:
	case "":
		l.logger.Warn("no version set in " + path + ", assuming version " + currentVersion)
		file.Version = currentVersion
	default:
		err := zerr.Wrap(domain.ErrInvalidConfig, "unsupported version")
		return nil, zerr.With(zerr.With(err, "path", path), "version", file.Version)
	}

	jobs, err := buildJobs(filepath.Dir(path), file.Locks)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return &domain.Config{Version: file.Version, Jobs: jobs}, nil
}

func buildJobs(root string, dtos []LockJobDTO) ([]domain.LockJob, error) {
	jobs := make([]domain.LockJob, 0, len(dtos))
	outputs := make(map[string]int, len(dtos))

	for i, dto := range dtos {
		if dto.Lock == "" || dto.Output == "" {
			err := zerr.Wrap(domain.ErrInvalidConfig, "lock job needs both lock and output")
			return nil, zerr.With(err, "job", i)
		}

		job := domain.LockJob{
			Lock:   resolvePath(root, dto.Lock),
			Output: resolvePath(root, dto.Output),
		}
		if prev, ok := outputs[job.Output]; ok {
			err := zerr.Wrap(domain.ErrInvalidConfig, "lock jobs share an output")
			err = zerr.With(zerr.With(err, "job", i), "conflicts_with", prev)
			return nil, zerr.With(err, "output", job.Output)
		}
		outputs[job.Output] = i
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
