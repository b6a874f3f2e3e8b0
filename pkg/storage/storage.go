package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage reads uploads from and writes downloads to the local disk.
// Downloads land in Dir.
type Storage struct {
	Dir string
}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	Name      string
	SizeBytes int64
}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// GetFileStats returns metadata about a file using os.Stat.
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filePath)
	}

	return &FileStats{
		Name:      info.Name(),
		SizeBytes: info.Size(),
	}, nil
}

// Save writes data as name inside Dir and returns the full path. The
// content type is implied by the name; plain files carry no metadata.
func (s *Storage) Save(name, contentType string, data []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, filepath.Base(name))
	if err := s.SaveFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}
