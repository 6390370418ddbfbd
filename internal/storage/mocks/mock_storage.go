package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Tazrian08/Organizer/internal/storage"
)

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Store(ctx context.Context, r io.Reader, hints storage.StoreHints) (storage.StoreResult, error) {
	args := m.Called(ctx, r, hints)
	return args.Get(0).(storage.StoreResult), args.Error(1)
}

func (m *MockBlobStore) BuildAccessURL(storageID string, class storage.ResourceClass, forceDownloadName string) string {
	args := m.Called(storageID, class, forceDownloadName)
	return args.String(0)
}

func (m *MockBlobStore) Remove(ctx context.Context, storageID string, class storage.ResourceClass) (storage.RemoveOutcome, error) {
	args := m.Called(ctx, storageID, class)
	return args.Get(0).(storage.RemoveOutcome), args.Error(1)
}
