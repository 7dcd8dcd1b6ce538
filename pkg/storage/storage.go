package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Stdin is the source name that reads from standard input.
const Stdin = "-"

// Storage reads metadata inputs from and writes results to the local filesystem.
type Storage struct {
	stdin io.Reader
}

// WithStdin returns a Storage that reads "-" from r.
func WithStdin(r io.Reader) *Storage {
	return &Storage{stdin: r}
}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filePath, content, 0o644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// ReadFile reads a whole input. "-" reads standard input.
func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	if filePath == Stdin {
		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// GetFileStats returns metadata about a file using os.Stat (no I/O overhead).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
	}, nil
}

// Discover expands paths into the list of inputs to read. Files and "-" are
// kept as given; directories are walked for files whose extension is in exts.
// Inputs keep argument order, and files found under one directory are sorted.
// Standard input can only be read once, so a repeated "-" is dropped.
func (s *Storage) Discover(ctx context.Context, paths []string, exts []string) ([]string, error) {
	paths = dropRepeatedStdin(paths)
	found := make([][]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			files, err := s.expand(ctx, p, exts)
			if err != nil {
				return err
			}
			found[i] = files
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var inputs []string
	for _, files := range found {
		inputs = append(inputs, files...)
	}
	return inputs, nil
}

func dropRepeatedStdin(paths []string) []string {
	kept := make([]string, 0, len(paths))
	seenStdin := false
	for _, p := range paths {
		if p == Stdin {
			if seenStdin {
				continue
			}
			seenStdin = true
		}
		kept = append(kept, p)
	}
	return kept
}

func (s *Storage) expand(ctx context.Context, path string, exts []string) ([]string, error) {
	if path == Stdin {
		return []string{Stdin}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.IsDir() && hasExtension(p, exts) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", path, err)
	}

	sort.Strings(files)
	return files, nil
}

func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(strings.TrimSpace(e)) {
			return true
		}
	}
	return false
}
