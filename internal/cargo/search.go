package cargo

import "strings"

// ParseSearchOutput extracts the published version of a crate from
// `cargo search` output. The listing format is one crate per line:
//
//	name = "version"    # description
//
// The first line beginning with `<pkg> =` wins; the version is the
// third whitespace-separated token with surrounding quotes stripped.
// Returns an empty string when no line matches.
func ParseSearchOutput(output, pkg string) string {
	prefix := pkg + " ="

	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, prefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return ""
		}
		return strings.Trim(fields[2], `"`)
	}

	return ""
}
