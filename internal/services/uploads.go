package services

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/volunteerhub-dev/volunteerhub/internal/apperr"
	"github.com/volunteerhub-dev/volunteerhub/internal/log"
)

// MaxImageBytes is the largest accepted upload.
const MaxImageBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageService stores uploaded images under randomly generated names and
// returns the URL they are served from.
type ImageService struct {
	dir       string
	urlPrefix string
	maxBytes  int64
	logger    zerolog.Logger
}

func NewImageService(dir, urlPrefix string) *ImageService {
	return &ImageService{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		maxBytes:  MaxImageBytes,
		logger:    log.WithComponent("uploads"),
	}
}

// Dir is the directory uploaded files are written to.
func (s *ImageService) Dir() string {
	return s.dir
}

// Save validates the content of r by sniffing it and writes it to disk.
// The declared content type of the upload is not trusted.
func (s *ImageService) Save(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", apperr.BadRequest("Could not read uploaded file")
	}
	if len(data) == 0 {
		return "", apperr.BadRequest("Uploaded file is empty")
	}
	if int64(len(data)) > s.maxBytes {
		return "", apperr.BadRequest("File too large. Maximum size is %dMB", s.maxBytes>>20)
	}

	detected := mimetype.Detect(data)
	ext, ok := imageExtensions[detected.String()]
	if !ok {
		return "", apperr.BadRequest("Invalid file type. Allowed types: jpeg, png, gif, webp")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", apperr.Internal(err, "Failed to store file")
	}

	name := uuid.NewString() + ext
	if err := writeFile(filepath.Join(s.dir, name), data); err != nil {
		return "", apperr.Internal(err, "Failed to store file")
	}

	s.logger.Info().
		Str("file", name).
		Str("mime", detected.String()).
		Int("bytes", len(data)).
		Msg("Stored uploaded image")

	return path.Join(s.urlPrefix, name), nil
}

func writeFile(dst string, data []byte) error {
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return f.Close()
}
