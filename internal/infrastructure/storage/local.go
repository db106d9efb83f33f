package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/tutu-catalog/internal/application/catalog"
	"github.com/jhoicas/tutu-catalog/internal/domain"
)

var _ catalog.ImageStorage = (*LocalImageStorage)(nil)

// LocalImageStorage guarda imágenes subidas en un directorio local con nombre
// generado (uuid + extensión original). Es el colaborador de uploads: el
// catálogo solo persiste la referencia que este devuelve.
type LocalImageStorage struct {
	dir string
}

// NewLocalImageStorage crea el directorio si no existe.
func NewLocalImageStorage(dir string) (*LocalImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalImageStorage{dir: dir}, nil
}

// Save escribe el contenido con un nombre generado y devuelve (filename, path).
// Solo acepta extensiones de imagen conocidas.
func (s *LocalImageStorage) Save(originalName string, r io.Reader) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", "", domain.ErrInvalidInput
	}
	filename := uuid.New().String() + ext
	path := filepath.Join(s.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("crear archivo de imagen: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return "", "", fmt.Errorf("escribir imagen: %w", err)
	}
	return filename, path, nil
}
