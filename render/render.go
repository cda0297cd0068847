package render

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/valyala/fasttemplate"
)

// Record is the rendered form of one hashed file.
type Record struct {
	Path   string `json:"path" yaml:"path"`
	Hex    string `json:"hex" yaml:"hex"`
	Base64 string `json:"base64" yaml:"base64"`
}

// Line renders the canonical output: the base64 digest alone.
func Line(rec Record) string {
	return rec.Base64
}

// Format substitutes {path}, {hex} and {base64} tags in format.
// Unknown tags are preserved as-is.
func Format(rec Record, format string) string {
	return fasttemplate.ExecuteStringStd(
		format, "{", "}",
		map[string]interface{}{
			"path":   rec.Path,
			"hex":    rec.Hex,
			"base64": rec.Base64,
		},
	)
}

// JSON renders the record as a single-line JSON object.
func JSON(rec Record) (string, error) {
	const errCtx = "rendering json"

	buf, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return string(buf), nil
}

// YAML renders the record as a YAML document.
func YAML(rec Record) (string, error) {
	const errCtx = "rendering yaml"

	buf, err := yaml.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return string(buf), nil
}
