package domain

// JobStatus is the outcome of processing one lock job.
type JobStatus string

const (
	// JobStatusCompleted indicates the lock file was parsed and its output rewritten.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusCached indicates the output was already up to date and nothing was written.
	JobStatusCached JobStatus = "cached"
)

// JobResult summarizes a processed lock job.
type JobResult struct {
	Job      LockJob
	Status   JobStatus
	PodCount int
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
