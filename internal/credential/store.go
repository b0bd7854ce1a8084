// Package credential persists the bearer token between runs. It is the only
// durable session state: the profile is always re-fetched from the backend.
package credential

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	gestaoerrors "github.com/fidelizaplus/gestao/internal/errors"
)

const fileName = "credentials.json"

// record is the on-disk layout. Only the token is stored.
type record struct {
	Token string `json:"token"`
}

// Store reads and writes the credential file under a home directory.
// The session store is its only writer.
type Store struct {
	dir string
}

// NewStore creates a credential store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the credential file location.
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Load reads the stored token. A missing file means "no stored session" and
// is not an error.
func (s *Store) Load() (string, bool, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, gestaoerrors.NewCredentialReadError(s.Path(), err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", false, gestaoerrors.NewCredentialReadError(s.Path(), err)
	}
	if rec.Token == "" {
		return "", false, nil
	}
	return rec.Token, true, nil
}

// Save writes the token, creating the home directory if needed. The file is
// owner-only: it holds a live credential.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return gestaoerrors.NewCredentialWriteError(s.Path(), err)
	}

	data, err := json.Marshal(record{Token: token})
	if err != nil {
		return gestaoerrors.NewCredentialWriteError(s.Path(), err)
	}

	if err := os.WriteFile(s.Path(), data, 0o600); err != nil {
		return gestaoerrors.NewCredentialWriteError(s.Path(), err)
	}
	return nil
}

// Delete removes the credential file. Deleting an absent file is a no-op so
// sign-out stays idempotent.
func (s *Store) Delete() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return gestaoerrors.NewCredentialWriteError(s.Path(), err)
	}
	return nil
}

// Fingerprint returns a short stable identifier for a token, safe to log and
// display. The raw token never appears in output.
func Fingerprint(token string) string {
	sum := blake3.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}
