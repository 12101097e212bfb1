package secret

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "nested", "admin_secret"))
}

func TestLoadMissing(t *testing.T) {
	s := testStore(t)
	_, ok := s.Load()
	assert.False(t, ok)
}

func TestSaveAndLoad(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save("hunter2"))

	value, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, "hunter2", value)
}

func TestSaveEmptyIsStillStored(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(""))

	value, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, "", value)
}

func TestClear(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save("hunter2"))
	require.NoError(t, s.Clear())

	_, ok := s.Load()
	assert.False(t, ok)

	// Clearing an already-missing secret is not an error.
	require.NoError(t, s.Clear())
}

func TestObtainPromptsOnceThenReuses(t *testing.T) {
	s := testStore(t)
	prompts := 0
	prompter := PrompterFunc(func(label string) (string, error) {
		prompts++
		return "hunter2", nil
	})

	value, err := s.Obtain(prompter)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", value)

	value, err = s.Obtain(prompter)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", value)
	assert.Equal(t, 1, prompts)
}

func TestObtainPersistsEmptyAnswer(t *testing.T) {
	s := testStore(t)
	prompts := 0
	prompter := PrompterFunc(func(label string) (string, error) {
		prompts++
		return "", nil
	})

	_, err := s.Obtain(prompter)
	require.NoError(t, err)
	_, err = s.Obtain(prompter)
	require.NoError(t, err)
	assert.Equal(t, 1, prompts)
}

func TestObtainPromptError(t *testing.T) {
	s := testStore(t)
	_, err := s.Obtain(PrompterFunc(func(string) (string, error) {
		return "", errors.New("stdin closed")
	}))
	require.Error(t, err)

	_, ok := s.Load()
	assert.False(t, ok)
}
