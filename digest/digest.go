package digest

import (
	"crypto/md5" //nolint:gosec // checksum format, not a security boundary
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Size is the length of an MD5 digest in bytes.
const Size = md5.Size

// Digest is the MD5 hash of an input's full byte content.
type Digest [Size]byte

// Sum computes the MD5 digest of everything read from r.
func Sum(r io.Reader) (Digest, error) {
	const errCtx = "computing digest"

	ha := md5.New() //nolint:gosec // checksum format, not a security boundary

	if _, err := io.Copy(ha, r); err != nil {
		return Digest{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	var dg Digest

	copy(dg[:], ha.Sum(nil))

	return dg, nil
}

// SumFile computes the MD5 digest of the file at path.
func SumFile(path string) (result Digest, retErr error) {
	const errCtx = "hashing file"

	fi, err := os.Open(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return Digest{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			result = Digest{}
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	return Sum(fi)
}

// Hex returns the digest as 32 lowercase hexadecimal characters.
func (dg Digest) Hex() string {
	return hex.EncodeToString(dg[:])
}

// Base64 returns the standard base64 encoding of the UTF-8 bytes of the
// hexadecimal string, not of the raw digest bytes. Existing consumers
// expect this exact 44-character form; do not switch to encoding dg[:].
func (dg Digest) Base64() string {
	return base64.StdEncoding.EncodeToString([]byte(dg.Hex()))
}
