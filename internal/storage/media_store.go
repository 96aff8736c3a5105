// Package storage persists media files on the local filesystem, one
// subdirectory per post under a configured root.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"aesn/internal/observability"
)

// MediaStore writes and removes media files. Paths are deterministic: a file
// attached to post P with sequence index i lands at <root>/<P>/<i>.<ext>.
type MediaStore struct {
	root string
}

// NewMediaStore returns a MediaStore rooted at the given directory, creating
// it if necessary.
func NewMediaStore(root string) (*MediaStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &MediaStore{root: root}, nil
}

func (s *MediaStore) postDir(postID uint) string {
	return filepath.Join(s.root, strconv.FormatUint(uint64(postID), 10))
}

// ResetPostDir wipes and recreates the post's media directory. Attaching
// media replaces any previous batch, so the directory starts empty.
func (s *MediaStore) ResetPostDir(postID uint) error {
	dir := s.postDir(postID)
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// Save writes one file at the deterministic path for (postID, seq) and
// returns its URI (slash-separated, relative to the media root).
func (s *MediaStore) Save(postID uint, seq int, ext string, r io.Reader) (string, error) {
	rel := filepath.Join(strconv.FormatUint(uint64(postID), 10), fmt.Sprintf("%d.%s", seq, ext))
	abs := filepath.Join(s.root, rel)

	f, err := os.Create(abs)
	if err != nil {
		return "", err
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		return "", err
	}
	observability.MediaBytesWritten.Add(float64(n))

	return filepath.ToSlash(rel), nil
}

// RemovePostDir deletes the post's media directory and everything in it.
// Removing a directory that never existed is not an error.
func (s *MediaStore) RemovePostDir(postID uint) error {
	return os.RemoveAll(s.postDir(postID))
}

// AttachedCount reports how many files are currently stored for the post.
func (s *MediaStore) AttachedCount(postID uint) (int, error) {
	entries, err := os.ReadDir(s.postDir(postID))
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
