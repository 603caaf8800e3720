// Package manifest extracts the package version from a Cargo.toml file.
//
// Only a single line matching `version = "<value>"` is consulted. This
// is a deliberate single-purpose line scan, not a TOML parse: the input
// shape is narrow and fixed, and a manifest without a version line is
// valid input that simply yields an empty version.
package manifest

import (
	"bufio"
	"io"
	"os"
	"regexp"
)

// FileName is the manifest file name expected inside a fork directory
const FileName = "Cargo.toml"

// versionLineRe captures the quoted value of a `version = "..."` line
var versionLineRe = regexp.MustCompile(`^version\s*=\s*"([^"]*)"`)

// Version returns the value of the first `version = "<value>"` line in
// the manifest at path. A manifest without such a line yields an empty
// string and no error. A missing or unreadable file is an error the
// caller decides how to treat.
func Version(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return scanVersion(f)
}

// scanVersion scans manifest content line by line for the version field
func scanVersion(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		matches := versionLineRe.FindStringSubmatch(scanner.Text())
		if matches != nil {
			return matches[1], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", nil
}
