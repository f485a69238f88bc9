package filestore

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/MKhiriev/visa-assistant/internal/config"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/utils"
)

// ImagesDir is the directory profile images are stored under.
const ImagesDir = "user_images"

// New builds the backend selected by cfg.Driver.
func New(ctx context.Context, cfg config.Files, log *logger.Logger) (FileStorage, error) {
	switch cfg.Driver {
	case config.FilesDriverLocal:
		return NewLocalStorage(cfg.PublicDir, cfg.PublicURL, log)
	case config.FilesDriverS3:
		return NewS3Storage(ctx, cfg.S3, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// namer produces unique object names.
type namer interface {
	Generate() string
}

func defaultNamer() namer {
	return utils.NewUUIDGenerator()
}

// objectPath joins dir and a fresh name with ext, e.g. "user_images/<uuid>.png".
func objectPath(n namer, dir, ext string) (string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	p := path.Join(dir, n.Generate()+ext)
	if err := checkPath(p); err != nil {
		return "", err
	}
	return p, nil
}

// checkPath rejects absolute paths and paths escaping the storage root.
func checkPath(p string) error {
	if p == "" || strings.HasPrefix(p, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}

	cleaned := path.Clean(p)
	if cleaned != p || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return nil
}

// publicURL appends the escaped object path to base.
func publicURL(base, p string) string {
	u := &url.URL{Path: p}
	return strings.TrimRight(base, "/") + "/" + u.EscapedPath()
}

// pathFromURL is the inverse of publicURL.
func pathFromURL(base, raw string) (string, bool) {
	prefix := strings.TrimRight(base, "/") + "/"
	if base == "" || !strings.HasPrefix(raw, prefix) {
		return "", false
	}

	escaped := strings.TrimPrefix(raw, prefix)
	if i := strings.IndexAny(escaped, "?#"); i >= 0 {
		escaped = escaped[:i]
	}

	p, err := url.PathUnescape(escaped)
	if err != nil || checkPath(p) != nil {
		return "", false
	}
	return p, true
}
