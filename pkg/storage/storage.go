package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

const maxAttachmentSize = 5 * 1024 * 1024

// ErrInvalidName rejects attachment references that point outside the
// upload directory.
var ErrInvalidName = errors.New("invalid attachment name")

// Attachments writes uploaded files into a flat shared directory under a
// token-prefixed name, so concurrent submissions cannot collide.
type Attachments struct {
	dir string
}

func NewAttachments(dir string) (*Attachments, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Attachments{dir: dir}, nil
}

// Save stores one upload for the message identified by token and returns
// the stored reference (the on-disk filename).
func (a *Attachments) Save(token string, header *multipart.FileHeader) (string, error) {
	if header.Size > maxAttachmentSize {
		return "", fmt.Errorf("file too large, maximum size is 5MB")
	}

	name := token + "_" + sanitizeFilename(header.Filename)

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(a.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Path resolves a stored reference to its on-disk path, refusing anything
// that could escape the upload directory.
func (a *Attachments) Path(ref string) (string, error) {
	if ref == "" || ref != filepath.Base(ref) || strings.Contains(ref, "..") {
		return "", ErrInvalidName
	}
	return filepath.Join(a.dir, ref), nil
}

// DisplayName strips the token prefix added by Save.
func DisplayName(ref string) string {
	if _, rest, ok := strings.Cut(ref, "_"); ok && rest != "" {
		return rest
	}
	return ref
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" || out == "." || out == ".." {
		out = "upload"
	}
	return out
}
