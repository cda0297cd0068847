// Package main provides the md5b64 CLI that computes the MD5
// digest of a single file and prints it as the base64 encoding
// of the digest's lowercase hex text.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/byte4ever/md5b64/digest"
	"github.com/byte4ever/md5b64/render"
)

const usage = "usage: md5b64 [flags] <file-path>"

func run() error {
	const errCtx = "md5b64"

	var (
		output string
		format string
		asJSON bool
		asYAML bool
		save   bool
		check  bool
	)

	flag.StringVar(
		&output, "output", "",
		"output file path (default: stdout)",
	)

	flag.StringVar(
		&format, "format", "",
		"output template with {path}, {hex} and {base64} tags",
	)

	flag.BoolVar(
		&asJSON, "json", false,
		"render the result as a JSON record",
	)

	flag.BoolVar(
		&asYAML, "yaml", false,
		"render the result as a YAML record",
	)

	flag.BoolVar(
		&save, "save", false,
		"also write a .md5b64 sidecar file",
	)

	flag.BoolVar(
		&check, "check", false,
		"verify the file against its .md5b64 sidecar",
	)

	flag.Parse()

	if flag.NArg() != 1 {
		// Missing argument is a normal exit reported on stdout,
		// not a failure.
		fmt.Println(usage)

		return nil
	}

	modes := 0

	for _, on := range []bool{asJSON, asYAML, format != ""} {
		if on {
			modes++
		}
	}

	if modes > 1 {
		return fmt.Errorf(
			"%s: only one of --json, --yaml or"+
				" --format may be specified",
			errCtx,
		)
	}

	path := flag.Arg(0)

	if check {
		ok, err := digest.VerifySidecar(path)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		if !ok {
			return fmt.Errorf(
				"%s: sidecar mismatch for '%s'",
				errCtx, path,
			)
		}

		fmt.Println("ok")

		return nil
	}

	dg, err := digest.SumFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	rec := render.Record{
		Path:   path,
		Hex:    dg.Hex(),
		Base64: dg.Base64(),
	}

	var result string

	switch {
	case asJSON:
		result, err = render.JSON(rec)
	case asYAML:
		result, err = render.YAML(rec)
	case format != "":
		result = render.Format(rec, format)
	default:
		result = render.Line(rec)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if save {
		if err := digest.SaveSidecar(path); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	if output != "" {
		err = os.WriteFile( //nolint:gosec // path from CLI flag
			output, []byte(result+"\n"), 0o666,
		)
		if err != nil {
			return fmt.Errorf(
				"%s: writing output: %w",
				errCtx, err,
			)
		}

		return nil
	}

	if _, err := os.Stdout.WriteString(result + "\n"); err != nil {
		return fmt.Errorf(
			"%s: writing to stdout: %w",
			errCtx, err,
		)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
