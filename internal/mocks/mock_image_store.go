package mocks

import (
	"context"
	"io"
	"sync"
)

type StoredImage struct {
	Name    string
	Content []byte
}

type MockImageStore struct {
	mu     sync.Mutex
	images []StoredImage

	BaseURL string
	SaveErr error
}

func (m *MockImageStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if m.SaveErr != nil {
		return "", m.SaveErr
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.images = append(m.images, StoredImage{Name: name, Content: content})

	return m.BaseURL + "/" + name, nil
}

func (m *MockImageStore) Stored() []StoredImage {
	m.mu.Lock()
	defer m.mu.Unlock()

	images := make([]StoredImage, len(m.images))
	copy(images, m.images)

	return images
}
