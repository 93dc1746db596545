package logger_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/podfiler/internal/adapters/logger"
	"go.trai.ch/podfiler/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	output := <-done
	require.NoError(t, r.Close())
	return output
}

func TestNew(t *testing.T) {
	output := captureStderr(t, func() {
		lg := logger.New()
		require.NotNil(t, lg)
		lg.Info("wrote 3 pods")
	})

	assert.Equal(t, "wrote 3 pods\n", output)
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Info("some message")
	lg.Warn("some warning")
	lg.Error(os.ErrPermission)
	lg.Error(nil)

	assert.Equal(t, "some message\n! some warning\n✗ Error: permission denied\n", buf.String())
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)

	lg.Info("before")
	lg.SetOutput(&second)
	lg.Info("after")

	assert.Contains(t, first.String(), "before")
	assert.NotContains(t, first.String(), "after")
	assert.Contains(t, second.String(), "after")
}

func TestLogger_ErrorChain(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	err := zerr.With(zerr.Wrap(domain.ErrCrossReferenceMissing, "no matching checkout entry"), "pod", "Orphan")
	lg.Error(zerr.Wrap(err, "failed to parse Podfile.lock"))

	assert.Equal(t, "✗ Error: failed to parse Podfile.lock\n\n"+
		"  Caused by:\n"+
		"    → no matching checkout entry\n"+
		"      pod: Orphan\n"+
		"    → cross reference missing\n", buf.String())
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "StandardError",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "WrappedChain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "Metadata",
			err:          zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			wantMessages: []string{"base error"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
		{
			name:         "MetadataOnStandardError",
			err:          zerr.With(os.ErrNotExist, "path", "Podfile.lock"),
			wantMessages: []string{"file does not exist"},
			wantMetadata: []map[string]any{{"path": "Podfile.lock"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			require.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message, "message at index %d", i)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata at index %d", i)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "Single",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "CausedBy",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "SortedMetadata",
			entries: []logger.ErrorEntry{
				{Message: "error", Metadata: map[string]any{"zebra": "z", "alpha": "a"}},
				{Message: "cause", Metadata: map[string]any{"pod": "Kit"}},
			},
			want: "Error: error\n       alpha: a\n       zebra: z\n\n  Caused by:\n    → cause\n      pod: Kit",
		},
		{
			name:    "Multiline",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}, {Message: "cause1\ncause2"}},
			want:    "Error: line1\n       line2\n\n  Caused by:\n    → cause1\n      cause2",
		},
		{
			name:    "Empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
