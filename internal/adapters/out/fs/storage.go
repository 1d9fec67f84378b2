// Package fs implements the local file storage contract on top of the
// operating system filesystem.
package fs

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Storage provides directory scanning, archival moves, staging cleanup,
// zip packaging and text-file creation for the pipelines.
type Storage struct{}

// NewStorage creates a filesystem storage adapter.
func NewStorage() *Storage {
	return &Storage{}
}

// CountFiles counts files in dir whose names match pattern.
func (s *Storage) CountFiles(dir, pattern string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return 0, fmt.Errorf("count files in %s: %w", dir, err)
	}
	if _, err := os.Stat(dir); err != nil {
		return 0, fmt.Errorf("count files in %s: %w", dir, err)
	}
	return len(matches), nil
}

// ListFiles returns the names of files in dir matching pattern, ordered
// by creation time, earliest first.
func (s *Storage) ListFiles(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("list files in %s: %w", dir, err)
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("list files in %s: %w", dir, err)
	}

	type fileEntry struct {
		name    string
		modTime int64
	}

	entries := make([]fileEntry, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", match, err)
		}
		if info.IsDir() {
			continue
		}
		entries = append(entries, fileEntry{name: filepath.Base(match), modTime: info.ModTime().UnixNano()})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].modTime < entries[j].modTime
	})

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.name
	}
	return names, nil
}

// MoveFile moves srcName from srcDir into dstDir under dstName.
func (s *Storage) MoveFile(srcDir, dstDir, srcName, dstName string) error {
	src := filepath.Join(srcDir, srcName)
	dst := filepath.Join(dstDir, dstName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("move %s to %s: %w", src, dst, err)
	}
	return nil
}

// ClearDir removes all regular files inside dir, leaving dir and any
// subdirectories in place.
func (s *Storage) ClearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("clear %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("clear %s: %w", dir, err)
		}
	}
	return nil
}

// CreateZip compresses the regular files of srcDir into an archive at
// dstPath. Entries are stored flat, at the archive root.
func (s *Storage) CreateZip(srcDir, dstPath string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("create zip from %s: %w", srcDir, err)
	}

	archive, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create zip %s: %w", dstPath, err)
	}
	defer archive.Close()

	writer := zip.NewWriter(archive)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := addZipEntry(writer, srcDir, entry.Name()); err != nil {
			_ = writer.Close()
			return fmt.Errorf("create zip %s: %w", dstPath, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("create zip %s: %w", dstPath, err)
	}
	return archive.Close()
}

// DirExists reports whether path exists and is a directory.
func (s *Storage) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// WriteTextFile creates a text file at path with the given content,
// terminated by a newline.
func (s *Storage) WriteTextFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write text file %s: %w", path, err)
	}
	return nil
}

func addZipEntry(writer *zip.Writer, dir, name string) error {
	file, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer file.Close()

	entry, err := writer.Create(name)
	if err != nil {
		return err
	}

	_, err = io.Copy(entry, file)
	return err
}
