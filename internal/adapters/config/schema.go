package config

// Podfilerfile represents the structure of the podfiler.yaml configuration file.
type Podfilerfile struct {
	Version string       `yaml:"version"`
	Locks   []LockJobDTO `yaml:"locks"`
}

// LockJobDTO represents a lock job definition in the configuration.
type LockJobDTO struct {
	Lock   string `yaml:"lock"`
	Output string `yaml:"output"`
}
