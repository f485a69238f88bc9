package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/models"
)

// LocalStorage keeps files on the local public disk.
type LocalStorage struct {
	root    string
	baseURL string
	names   namer
	logger  *logger.Logger
}

// NewLocalStorage creates root if needed and returns a storage whose files
// are reachable under baseURL.
func NewLocalStorage(root, baseURL string, log *logger.Logger) (*LocalStorage, error) {
	if root == "" || baseURL == "" {
		return nil, errors.New("local storage requires a directory and a public url")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("error creating public directory: %w", err)
	}

	return &LocalStorage{root: root, baseURL: baseURL, names: defaultNamer(), logger: log}, nil
}

func (l *LocalStorage) Store(ctx context.Context, dir string, img models.ImageUpload) (string, error) {
	if len(img.Content) == 0 {
		return "", ErrEmptyFile
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p, err := objectPath(l.names, dir, img.Extension)
	if err != nil {
		return "", err
	}

	full := l.fullPath(p)
	if err = os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoringFile, err)
	}
	if err = os.WriteFile(full, img.Content, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoringFile, err)
	}

	l.logger.Debug().Str("func", "*LocalStorage.Store").Str("path", p).Int("size", len(img.Content)).Msg("file stored")
	return publicURL(l.baseURL, p), nil
}

func (l *LocalStorage) Exists(_ context.Context, p string) (bool, error) {
	if err := checkPath(p); err != nil {
		return false, err
	}

	info, err := os.Stat(l.fullPath(p))
	switch {
	case err == nil:
		return !info.IsDir(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

func (l *LocalStorage) Delete(_ context.Context, p string) error {
	if err := checkPath(p); err != nil {
		return err
	}

	if err := os.Remove(l.fullPath(p)); err != nil {
		return fmt.Errorf("%w: %w", ErrDeletingFile, err)
	}
	return nil
}

func (l *LocalStorage) PathFromURL(raw string) (string, bool) {
	return pathFromURL(l.baseURL, raw)
}

// Handler serves the public directory. Directory listings are not exposed.
func (l *LocalStorage) Handler() http.Handler {
	files := http.FileServer(http.Dir(l.root))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path[len(r.URL.Path)-1] == '/' {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func (l *LocalStorage) fullPath(p string) string {
	return filepath.Join(l.root, filepath.FromSlash(p))
}
