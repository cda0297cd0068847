// Package digest computes MD5 file digests rendered as the base64 encoding
// of their lowercase hex text. It stores digests in companion .md5b64 files
// alongside the original, enabling later verification of hashed files.
package digest
