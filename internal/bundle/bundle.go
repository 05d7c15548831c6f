// Package bundle locates the compiled browser form module: the loader
// script and the WebAssembly binary it instantiates. Builds stamp both
// file names, so the locator globs for them instead of hardcoding paths.
package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	scriptPattern = "contactform-*.js"
	binaryPattern = "contactform-*.wasm"

	// mountExport is the symbol the loader script must export. Filtering on
	// it keeps helper scripts in the same directory from being picked up.
	mountExport = "mountContactForm"
)

var (
	ErrScriptNotFound = errors.New("contact form script not found")
	ErrBinaryNotFound = errors.New("contact form binary not found")
)

// Bundle points at the two build artifacts of the browser form module.
type Bundle struct {
	Script string
	Binary string
}

// Locate finds the form module artifacts under dir. It returns an error
// wrapping ErrScriptNotFound or ErrBinaryNotFound when an artifact is
// missing, and an error naming every candidate when several match.
func Locate(dir string) (Bundle, error) {
	scripts, err := match(dir, scriptPattern)
	if err != nil {
		return Bundle{}, err
	}
	scripts, err = exportingMount(dir, scripts)
	if err != nil {
		return Bundle{}, err
	}

	switch len(scripts) {
	case 0:
		return Bundle{}, fmt.Errorf("%w in %s: no %s exporting %s", ErrScriptNotFound, dir, scriptPattern, mountExport)
	case 1:
	default:
		return Bundle{}, fmt.Errorf("ambiguous contact form script in %s: %s", dir, strings.Join(scripts, ", "))
	}

	binaries, err := match(dir, binaryPattern)
	if err != nil {
		return Bundle{}, err
	}

	switch len(binaries) {
	case 0:
		return Bundle{}, fmt.Errorf("%w in %s: no %s", ErrBinaryNotFound, dir, binaryPattern)
	case 1:
	default:
		return Bundle{}, fmt.Errorf("ambiguous contact form binary in %s: %s", dir, strings.Join(binaries, ", "))
	}

	return Bundle{
		Script: filepath.Join(dir, scripts[0]),
		Binary: filepath.Join(dir, binaries[0]),
	}, nil
}

// match returns the file names under dir matching pattern. os.ReadDir
// returns entries sorted by name, so the result is deterministic.
func match(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading bundle directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := doublestar.PathMatch(pattern, filepath.ToSlash(entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("matching %s: %w", pattern, err)
		}
		if matched {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// exportingMount keeps only the scripts whose content mentions the mount
// export.
func exportingMount(dir string, names []string) ([]string, error) {
	var kept []string
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading candidate script %s: %w", name, err)
		}
		if bytes.Contains(data, []byte(mountExport)) {
			kept = append(kept, name)
		}
	}
	return kept, nil
}
