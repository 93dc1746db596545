package domain

import "time"

// LockInfo records the last successful generation of an output from a Podfile.lock.
type LockInfo struct {
	LockPath   string    `json:"lock_path,omitzero"`
	OutputPath string    `json:"output_path,omitzero"`
	InputHash  string    `json:"input_hash,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Version    string    `json:"version,omitzero"`
	PodCount   int       `json:"pod_count,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
