// Package storage persists uploaded attachments on the local filesystem.
// Attachment lifecycle is owned by the record that references the file: the
// record mutation and the file mutation are two independent steps, so a crash
// in between can leave an orphaned file behind.
package storage

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxFileSize = 50 * 1024 * 1024 // 50 MB

	// Subdirectories under the upload root, one per owning record kind.
	StudentDir    = "students"
	InternshipDir = "internships"
)

var ErrFileTooLarge = errors.New("file exceeds maximum allowed size")

// Store writes attachments under baseDir/<subdir>/ and serves them back via
// the static /uploads route keyed by the stored filename.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save writes the uploaded file and returns its storage key. The key embeds a
// fresh UUID, so concurrent uploads of the same original filename never
// overwrite each other.
func (s *Store) Save(fh *multipart.FileHeader, subdir string) (string, error) {
	if fh.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	absDir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := filepath.Ext(fh.Filename)
	key := fmt.Sprintf("%s-%s%s", uuid.New().String(), sanitizeName(fh.Filename), ext)

	absPath := filepath.Join(absDir, key)
	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return key, nil
}

// Delete removes a stored file. It is best-effort: the filesystem and the
// record store are not transactionally coupled, so a missing file only gets a
// warning and the caller's record mutation stands.
func (s *Store) Delete(subdir, key string) {
	if key == "" {
		return
	}
	absPath := filepath.Join(s.baseDir, subdir, key)
	if err := os.Remove(absPath); err != nil {
		log.Printf("warning: failed to delete attachment %s: %v", absPath, err)
	}
}

// Path returns the absolute on-disk location of a stored file.
func (s *Store) Path(subdir, key string) string {
	return filepath.Join(s.baseDir, subdir, key)
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name)) // extension is re-added by the caller
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}
