// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/podfiler/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
// Vertices are collected on a tape which is summarized to out on Close.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
	out  io.Writer
}

// New creates a new Recorder summarizing to stderr.
func New() ports.Telemetry {
	return NewRecorder(os.Stderr)
}

// NewRecorder creates a new Recorder summarizing to out. A nil out disables the summary.
func NewRecorder(out io.Writer) *Recorder {
	tape := progrock.NewTape()
	return &Recorder{
		tape: tape,
		rec:  progrock.NewRecorder(tape),
		out:  out,
	}
}

// Record starts recording a new vertex.
// Vertices are addressed by the digest of their name, so recording the same
// name twice replaces the earlier vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Summary reports the vertices recorded so far.
func (r *Recorder) Summary() Summary {
	errored := r.tape.ErroredCount()
	return Summary{
		Total:    r.tape.TotalCount(),
		Written:  r.tape.UncachedCount() - errored,
		Cached:   r.tape.CachedCount(),
		Failed:   errored,
		Duration: r.tape.Duration(),
	}
}

// Close closes the tape and writes the summary line.
// Nothing is written when no vertex was recorded.
func (r *Recorder) Close() error {
	if err := r.rec.Close(); err != nil {
		return err
	}

	s := r.Summary()
	if r.out == nil || s.Total == 0 {
		return nil
	}
	_, err := fmt.Fprintln(r.out, s.String())
	return err
}

// Summary counts the outcome of every recorded lock job.
type Summary struct {
	Total    int
	Written  int
	Cached   int
	Failed   int
	Duration time.Duration
}

// String formats the summary without its duration when it is zero.
func (s Summary) String() string {
	line := fmt.Sprintf("%d lock files: %d written, %d cached, %d failed", s.Total, s.Written, s.Cached, s.Failed)
	if s.Duration > 0 {
		line += fmt.Sprintf(" (%s)", s.Duration.Round(time.Millisecond))
	}
	return line
}
