package podlock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/podfiler/internal/engine/podlock"
)

func TestParseChecksums(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		expected map[string]string
	}{
		{
			name:     "Empty",
			section:  "SPEC CHECKSUMS:",
			expected: map[string]string{},
		},
		{
			name: "Entries",
			section: "SPEC CHECKSUMS:\n" +
				"  AFNetworking: cf8e418e16f0c9c7e5c3150d019a3c679d015018\n" +
				"  Reachability: b14c20321fa00f7f4600d8c9856fc57e71ef2ffe",
			expected: map[string]string{
				"AFNetworking": "cf8e418e16f0c9c7e5c3150d019a3c679d015018",
				"Reachability": "b14c20321fa00f7f4600d8c9856fc57e71ef2ffe",
			},
		},
		{
			name: "LastEntryWins",
			section: "SPEC CHECKSUMS:\n" +
				"  Foo: 1111111111111111111111111111111111111111\n" +
				"  Foo: 2222222222222222222222222222222222222222",
			expected: map[string]string{
				"Foo": "2222222222222222222222222222222222222222",
			},
		},
		{
			name: "SkipsShortDigests",
			section: "SPEC CHECKSUMS:\n" +
				"  Foo: abc123\n" +
				"  Bar: 3333333333333333333333333333333333333333",
			expected: map[string]string{
				"Bar": "3333333333333333333333333333333333333333",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checksums, err := podlock.ParseChecksums(newMatcher(t), tt.section)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, checksums)
		})
	}
}
