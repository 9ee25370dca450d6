package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// The pepper is a server-wide secret appended to every password before
// hashing. It lives outside the database so a leaked dump alone is not enough
// to brute force hashes. An empty pepper disables it.
var (
	pepperMu sync.RWMutex
	pepper   string
)

// Pepper returns the active pepper.
func Pepper() string {
	pepperMu.RLock()
	defer pepperMu.RUnlock()
	return pepper
}

// SetPepper replaces the active pepper. Hashes created under a different
// pepper stop verifying.
func SetPepper(p string) {
	pepperMu.Lock()
	pepper = p
	pepperMu.Unlock()
}

// LoadPepper reads the pepper from path, creating the file with a fresh random
// value when it does not exist. An empty path clears the pepper.
func LoadPepper(path string) error {
	if path == "" {
		SetPepper("")
		return nil
	}

	path = filepath.Clean(path)
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		SetPepper(string(b))
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("reading pepper: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating pepper directory: %w", err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	p := base64.RawURLEncoding.EncodeToString(raw)

	if err := os.WriteFile(path, []byte(p), 0o600); err != nil {
		return fmt.Errorf("writing pepper: %w", err)
	}

	SetPepper(p)
	return nil
}
