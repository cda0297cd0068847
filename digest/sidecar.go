package digest

import (
	"errors"
	"fmt"
	"os"
)

// SidecarExt is the extension appended to a hashed file's path to
// form its sidecar path.
const SidecarExt = ".md5b64"

// SaveSidecar hashes the file at path and writes the base64 digest
// to a companion sidecar file.
func SaveSidecar(path string) error {
	const errCtx = "saving sidecar"

	dg, err := SumFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	sp := path + SidecarExt

	if err := os.WriteFile(sp, []byte(dg.Base64()), 0o600); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// ReadSidecar reads a stored base64 digest from a sidecar file.
// Returns empty string with no error if the sidecar file does
// not exist.
func ReadSidecar(path string) (string, error) {
	const errCtx = "reading sidecar"

	sp := path + SidecarExt

	if _, err := os.Stat(sp); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	stored, err := os.ReadFile(sp) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return string(stored), nil
}

// VerifySidecar recomputes the digest of the file at path and
// compares it against the stored sidecar value.
func VerifySidecar(path string) (bool, error) {
	const errCtx = "verifying sidecar"

	dg, err := SumFile(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	stored, err := ReadSidecar(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	return dg.Base64() == stored, nil
}
