// Package render turns a hashed file into its textual output forms: the
// bare base64 line, a single-brace {tag} template expansion, or a JSON or
// YAML record carrying path, hex and base64 fields.
package render
