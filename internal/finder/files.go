// Package finder locates albums and their files on the disk.
package finder

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FileFilterFn is a function type used to filter files.
// It takes a fs.FileInfo object and returns a boolean indicating
// whether the file should be included (true) or filtered out (false).
type FileFilterFn = func(fs.FileInfo) bool

// FilterByExt creates a file filter function that filters files based on their extensions (without the leading
// dot). If caseSensitive is false, the extensions will be compared in a case-insensitive manner.
func FilterByExt(caseSensitive bool, exts ...string) FileFilterFn {
	var m = make(map[string]struct{}, len(exts))

	for _, ext := range exts {
		if !caseSensitive {
			ext = strings.ToLower(ext)
		}

		m[ext] = struct{}{}
	}

	return func(info fs.FileInfo) bool {
		if info.IsDir() {
			return false
		}

		if ext := filepath.Ext(info.Name()); ext != "" {
			if !caseSensitive {
				ext = strings.ToLower(ext)
			}

			if _, ok := m[ext[1:]]; ok {
				return true
			}
		}

		return false
	}
}

// FilterByBaseName creates a file filter function that accepts files whose name without the extension is one of
// the names (case-insensitive).
func FilterByBaseName(names ...string) FileFilterFn {
	return func(info fs.FileInfo) bool {
		var base = strings.TrimSuffix(info.Name(), filepath.Ext(info.Name()))

		return !info.IsDir() && slices.ContainsFunc(names, func(n string) bool { return strings.EqualFold(n, base) })
	}
}

// Files returns a sequence of absolute paths to the files directly inside the directory, sorted by name.
// Every filter must accept the file. Filesystem errors are ignored.
func Files(ctx context.Context, dir string, filter ...FileFilterFn) iter.Seq[string] {
	return func(yield func(string) bool) {
		if err := ctx.Err(); err != nil {
			return
		}

		abs, absErr := filepath.Abs(dir)
		if absErr != nil {
			return
		}

		entries, readErr := os.ReadDir(abs) // sorted by filename
		if readErr != nil {
			return
		}

	loop:
		for _, entry := range entries {
			var path = filepath.Join(abs, entry.Name())

			stat, statErr := os.Stat(path) // follows symlinks
			if statErr != nil || stat.IsDir() {
				continue
			}

			for _, fn := range filter {
				if !fn(stat) {
					continue loop
				}
			}

			if err := ctx.Err(); err != nil {
				return
			}

			if !yield(path) {
				return
			}
		}
	}
}

// Albums returns a sequence of absolute paths to the directories (the given ones and everything below them) that
// hold at least one file accepted by the isTrack filter. Each directory is yielded once, even when the given
// paths overlap. Given paths that are not directories are skipped, as are the filesystem errors.
func Albums(ctx context.Context, where []string, isTrack FileFilterFn) iter.Seq[string] {
	return func(yield func(string) bool) {
		var seen = make(map[string]struct{})

		for _, root := range where {
			abs, err := filepath.Abs(root)
			if err != nil {
				continue
			}

			if stat, statErr := os.Stat(abs); statErr != nil || !stat.IsDir() {
				continue
			}

			var stop bool

			_ = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
				if walkErr != nil || !d.IsDir() {
					return nil
				}

				if ctx.Err() != nil {
					stop = true

					return filepath.SkipAll
				}

				if _, ok := seen[path]; ok {
					return filepath.SkipDir // already walked from another given path
				}

				seen[path] = struct{}{}

				for range Files(ctx, path, isTrack) {
					if !yield(path) {
						stop = true

						return filepath.SkipAll
					}

					break
				}

				return nil
			})

			if stop {
				return
			}
		}
	}
}
