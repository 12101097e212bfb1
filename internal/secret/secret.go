// Package secret holds the shared admin password on disk for the terminal
// console, the counterpart of the browser's local storage slot. There is no
// rotation or expiry; it is a single shared secret, not a session.
package secret

import (
	"os"
	"path/filepath"
	"strings"
)

// Prompter collects the secret from the operator. Prompt blocks until the
// operator answers.
type Prompter interface {
	Prompt(label string) (string, error)
}

type PrompterFunc func(label string) (string, error)

func (f PrompterFunc) Prompt(label string) (string, error) { return f(label) }

type Store struct {
	path string
}

func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(filepath.Join(dir, "blkxchange", "admin_secret")), nil
}

func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	return strings.TrimRight(string(data), "\n"), true
}

func (s *Store) Save(value string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(value), 0o600)
}

func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Obtain returns the saved secret, or blocks on the prompter and persists
// whatever was entered, including an empty answer. A wrong secret surfaces
// later as an unauthorized API error, not here.
func (s *Store) Obtain(p Prompter) (string, error) {
	if value, ok := s.Load(); ok {
		return value, nil
	}
	value, err := p.Prompt("Enter admin password")
	if err != nil {
		return "", err
	}
	if err := s.Save(value); err != nil {
		return "", err
	}
	return value, nil
}
