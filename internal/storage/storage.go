// Package storage persists uploaded images and returns the URL they are
// served from.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrInvalidPath = errors.New("invalid storage path")

type ImageStore interface {
	// Save writes the image under the slash separated relative path and
	// returns its public URL.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// LocalImageStore writes images below Root. They are expected to be served
// under BaseURL.
type LocalImageStore struct {
	Root    string
	BaseURL string
}

func NewLocalImageStore(root, baseURL string) *LocalImageStore {
	return &LocalImageStore{
		Root:    root,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *LocalImageStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	clean := path.Clean(name)
	if clean == "." || path.IsAbs(clean) || strings.HasPrefix(clean, "../") || clean == ".." {
		return "", ErrInvalidPath
	}

	dst := filepath.Join(s.Root, filepath.FromSlash(clean))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}

	_, err = io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", err
	}

	return s.BaseURL + "/" + clean, nil
}

// CloudinaryImageStore uploads images to Cloudinary using the path without
// its extension as the public id.
type CloudinaryImageStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryImageStore(cloudinaryURL string) (*CloudinaryImageStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init failed: %w", err)
	}

	return &CloudinaryImageStore{cld: cld}, nil
}

func (s *CloudinaryImageStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	publicID := strings.TrimSuffix(name, path.Ext(name))

	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}
