// Package storage writes exported crops to timestamped files.
package storage

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/soocke/pixel-crop-go/domain/export"
)

const maxNameAttempts = 100

// Storage saves images into a directory as <prefix>_<timestamp>.<ext>.
type Storage struct {
	directory string
	prefix    string
	format    export.Format
	quality   int
	now       func() time.Time
}

// NewStorage constructs a storage writing format files into directory.
func NewStorage(directory, prefix string, format export.Format, quality int) *Storage {
	if prefix == "" {
		prefix = "crop"
	}
	if format == "" {
		format = export.PNG
	}
	return &Storage{
		directory: expandHome(directory),
		prefix:    prefix,
		format:    format,
		quality:   quality,
		now:       time.Now,
	}
}

// SetDirectory changes the destination and creates it.
func (s *Storage) SetDirectory(dir string) error {
	s.directory = expandHome(dir)
	return os.MkdirAll(s.directory, 0o755)
}

func (s *Storage) SetFormat(f export.Format, quality int) {
	s.format = f
	s.quality = quality
}

func (s *Storage) Directory() string     { return s.directory }
func (s *Storage) Format() export.Format { return s.format }

// Save encodes img and returns the path written. Saves within the same
// second get a numeric suffix instead of overwriting.
func (s *Storage) Save(img image.Image) (string, error) {
	if err := os.MkdirAll(s.directory, 0o755); err != nil {
		return "", fmt.Errorf("storage: create directory: %w", err)
	}
	base := fmt.Sprintf("%s_%s", s.prefix, s.now().Format("20060102_150405"))
	ext := s.format.Ext()

	var (
		file *os.File
		path string
		err  error
	)
	for i := 0; i < maxNameAttempts; i++ {
		name := base + ext
		if i > 0 {
			name = fmt.Sprintf("%s_%d%s", base, i, ext)
		}
		path = filepath.Join(s.directory, name)
		file, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil || !errors.Is(err, fs.ErrExist) {
			break
		}
	}
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}

	if err := export.Encode(file, img, s.format, s.quality); err != nil {
		file.Close()
		os.Remove(path)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("storage: close %s: %w", path, err)
	}
	return path, nil
}

func expandHome(dir string) string {
	if dir == "~" || strings.HasPrefix(dir, "~/") || strings.HasPrefix(dir, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, dir[1:])
		}
	}
	return dir
}
