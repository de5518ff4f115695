// Package config holds the small set of constants the driver and
// module resolver need: the source file extension, the bundled stdlib
// module names, and the import-path environment variable convention
// (spec.md §4.7, §6). Grounded in the teacher's internal/config.
package config

import (
	"os"
	"path/filepath"
)

// SourceFileExt is the extension the resolver appends to an import
// path that doesn't already carry one.
const SourceFileExt = ".lm"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".lm"}

// HasSourceExt reports whether path already ends with a recognized
// source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// StdlibModules is the fixed set of module names auto-imported into
// every environment (spec.md §4.7).
var StdlibModules = []string{
	"Array", "Basics", "Float", "Math", "Object", "Range", "Result", "String", "Symbol", "Tuple",
}

// BasicsModule is the one stdlib module whose fields are additionally
// bound unqualified (spec.md §4.7).
const BasicsModule = "Basics"

// ImportPathEnvVar is the colon-separated import-search-path
// environment variable (spec.md §6).
const ImportPathEnvVar = "LUMEN_PATH"

// ImportPathsFromEnv reads a colon-separated list of directories from
// the named environment variable, in the same os.Getenv +
// filepath.SplitList idiom used across the example pack.
func ImportPathsFromEnv(name string) []string {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	return filepath.SplitList(v)
}
