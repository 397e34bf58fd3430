// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Expand resolves a mix of file and directory arguments into candidate
// source files. Files are passed through untouched; directories contribute
// their documents with a supported extension, walking subdirectories when
// recursive is set. Missing inputs are collected into the returned error
// while the remaining inputs are still expanded.
func Expand(inputs []string, extensions []string, recursive bool) ([]string, error) {
	var files []string
	var errs *multierror.Error

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s does not exist", input))
			continue
		}

		if !info.IsDir() {
			files = append(files, input)
			continue
		}

		found, err := scanDir(input, extensions, recursive)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("scanning %s: %w", input, err))
			continue
		}
		files = append(files, found...)
	}

	sort.Strings(files)
	return files, errs.ErrorOrNil()
}

func scanDir(dir string, extensions []string, recursive bool) ([]string, error) {
	var files []string

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if matchesExt(entry.Name(), extensions) {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
		return files, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && matchesExt(d.Name(), extensions) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func matchesExt(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
