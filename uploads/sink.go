package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnsupportedMediaType marks an upload whose declared content type is
// not an image kind.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// DiskSink stores uploaded files under a single directory. File names
// combine the upload timestamp, a random fragment, and the original name,
// so two uploads never collide even within the same millisecond.
type DiskSink struct {
	dir string
}

func NewDiskSink(dir string) (*DiskSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &DiskSink{dir: dir}, nil
}

// Store writes the payload to disk and returns its path. The write is
// all-or-nothing: the payload goes to a temp file first and is renamed
// into place only after a successful sync, so a returned reference always
// points at the complete bytes.
func (s *DiskSink) Store(file io.Reader, originalName, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMediaType, contentType)
	}

	name := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], filepath.Base(originalName))
	dest := filepath.Join(s.dir, name)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing upload: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("syncing upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("storing upload: %w", err)
	}

	return filepath.ToSlash(dest), nil
}

// Remove deletes a previously stored file. Used to roll back an upload
// when the document referencing it could not be inserted.
func (s *DiskSink) Remove(ref string) error {
	return os.Remove(filepath.FromSlash(ref))
}
