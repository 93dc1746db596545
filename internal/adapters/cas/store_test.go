package cas_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/podfiler/internal/adapters/cas"
	"go.trai.ch/podfiler/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	info := domain.LockInfo{
		LockPath:   "ios/Podfile.lock",
		OutputPath: "build/pods.yml",
		InputHash:  "abc",
		OutputHash: "def",
		PodCount:   3,
		Timestamp:  time.Now(),
	}
	require.NoError(t, store.Put(info))

	got, err := store.Get("ios/./Podfile.lock")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "def", got.OutputHash)
	assert.Equal(t, 3, got.PodCount)

	missing, err := store.Get("other/Podfile.lock")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), ".podfiler", "state.json")

	store1, err := cas.NewStore(storePath)
	require.NoError(t, err)
	require.NoError(t, store1.Put(domain.LockInfo{LockPath: "Podfile.lock", InputHash: "xyz"}))

	store2, err := cas.NewStore(storePath)
	require.NoError(t, err)

	got, err := store2.Get("Podfile.lock")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "xyz", got.InputHash)
}

func TestStore_OmitZero(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	store, err := cas.NewStore(storePath)
	require.NoError(t, err)

	require.NoError(t, store.Put(domain.LockInfo{LockPath: "Podfile.lock"}))

	content, err := os.ReadFile(storePath) //nolint:gosec // Test file with controlled path
	require.NoError(t, err)

	jsonStr := string(content)
	assert.Contains(t, jsonStr, "lock_path")
	assert.NotContains(t, jsonStr, "input_hash")
	assert.NotContains(t, jsonStr, "output_hash")
	assert.NotContains(t, jsonStr, "pod_count")
	assert.NotContains(t, jsonStr, "timestamp")
}

func TestStore_ConcurrentPut(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	store, err := cas.NewStore(storePath)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, lock := range []string{"a/Podfile.lock", "b/Podfile.lock", "c/Podfile.lock", "d/Podfile.lock"} {
		wg.Go(func() {
			assert.NoError(t, store.Put(domain.LockInfo{LockPath: lock, InputHash: lock}))
		})
	}
	wg.Wait()

	reloaded, err := cas.NewStore(storePath)
	require.NoError(t, err)
	for _, lock := range []string{"a/Podfile.lock", "b/Podfile.lock", "c/Podfile.lock", "d/Podfile.lock"} {
		got, err := reloaded.Get(lock)
		require.NoError(t, err)
		require.NotNil(t, got, lock)
		assert.Equal(t, lock, got.InputHash)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(storePath, []byte("{not json"), 0o600))

	_, err := cas.NewStore(storePath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStoreUnmarshalFailed))
}
