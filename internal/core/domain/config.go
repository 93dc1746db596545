package domain

// LockJob pairs a Podfile.lock with the file its pod locks are rendered to.
type LockJob struct {
	Lock   string
	Output string
}

// Config is the podfiler configuration.
type Config struct {
	// Version is the configuration format version.
	Version string

	// Jobs lists the lock files processed by parse-lock when no flags are given.
	Jobs []LockJob
}
