// Package gallery manages the uploads directory. The directory listing is the
// catalog: there is no separate metadata index, a stored file's name carries
// its upload timestamp and the client's original filename.
package gallery

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var InvalidFilenameErr = errors.New("invalid filename")

// imageExtensions is the set of extensions exposed through ListImages.
// Uploads are not restricted to this set; the listing filter is the
// exposure boundary.
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// Store owns the uploads directory exclusively; no other component writes
// into it. There is no locking across operations: concurrent writes to the
// same stored name are last-write-wins.
type Store struct {
	uploadsDir string
	nowTime    func() time.Time
}

// StoreOption defines a function type to modify the Store instance.
type StoreOption func(*Store)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) StoreOption {
	return func(st *Store) {
		st.nowTime = nowFunc
	}
}

// NewStore creates the uploads directory if it does not exist and returns a
// Store over it.
func NewStore(uploadsDir string, options ...StoreOption) (*Store, error) {
	if err := os.MkdirAll(uploadsDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating uploads directory %s: %w", uploadsDir, err)
	}

	st := &Store{
		uploadsDir: uploadsDir,
		nowTime:    time.Now,
	}

	for _, opt := range options {
		opt(st)
	}

	return st, nil
}

// Dir returns the uploads directory path.
func (st *Store) Dir() string {
	return st.uploadsDir
}

// ListAll returns every entry in the uploads directory, unfiltered. A missing
// or unreadable directory is a listing failure, not an empty gallery.
func (st *Store) ListAll() ([]string, error) {
	entries, err := os.ReadDir(st.uploadsDir)
	if err != nil {
		return nil, fmt.Errorf("reading uploads directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// ListImages returns the directory entries whose extension marks them as an
// image. Logs, temp files and anything else a deployment drops into the
// directory are excluded, not errored.
func (st *Store) ListImages() ([]string, error) {
	names, err := st.ListAll()
	if err != nil {
		return nil, err
	}

	images := make([]string, 0, len(names))
	for _, name := range names {
		if IsImage(name) {
			images = append(images, name)
		}
	}
	return images, nil
}

// IsImage reports whether filename carries a recognised image extension.
// The comparison is case-insensitive.
func IsImage(filename string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Save writes content under "<unix-millis>-<original name>" and returns the
// stored filename. Two saves of the same original name within the same
// millisecond produce the same stored name and the second write wins; the
// timestamp prefix is the only uniqueness safeguard.
//
// Pattern: temp file, write, atomic rename. A reader listing the directory
// mid-save sees the ".tmp" entry, which the image filter excludes.
func (st *Store) Save(originalName string, content io.Reader) (string, error) {
	cleaned, err := sanitizeFilename(originalName)
	if err != nil {
		return "", err
	}

	storedName := fmt.Sprintf("%d-%s", st.nowTime().UnixMilli(), cleaned)
	fullPath := filepath.Join(st.uploadsDir, storedName)
	tmpPath := fullPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("creating temp file for %s: %w", storedName, err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", storedName, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing %s: %w", storedName, err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming %s: %w", storedName, err)
	}

	return storedName, nil
}

// Delete removes filename from the uploads directory. Deleting a file that
// does not exist is a failure, never a silent success.
func (st *Store) Delete(filename string) error {
	cleaned, err := sanitizeFilename(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(st.uploadsDir, cleaned)); err != nil {
		return fmt.Errorf("deleting %s: %w", cleaned, err)
	}
	return nil
}

// sanitizeFilename rejects client-supplied names that could escape the
// uploads directory. Extensions and content types are deliberately not
// restricted here.
func sanitizeFilename(name string) (string, error) {
	if name == "" {
		return "", InvalidFilenameErr
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", InvalidFilenameErr
	}

	cleaned := filepath.Base(filepath.Clean(name))
	if cleaned == "" || cleaned == "." {
		return "", InvalidFilenameErr
	}
	return cleaned, nil
}
