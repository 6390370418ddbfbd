package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Tazrian08/Organizer/internal/model"
	"github.com/Tazrian08/Organizer/internal/service"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context, identity model.Identity, targetOwner string) ([]model.Document, error) {
	args := m.Called(ctx, identity, targetOwner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Upload(ctx context.Context, identity model.Identity, in service.UploadInput) (*model.Document, error) {
	args := m.Called(ctx, identity, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Download(ctx context.Context, identity model.Identity, documentID string) (*service.DownloadResult, error) {
	args := m.Called(ctx, identity, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DownloadResult), args.Error(1)
}

func (m *MockDocumentService) ResolveDownloadURL(ctx context.Context, identity model.Identity, documentID string) (string, error) {
	args := m.Called(ctx, identity, documentID)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, identity model.Identity, documentID string) error {
	args := m.Called(ctx, identity, documentID)
	return args.Error(0)
}

func (m *MockDocumentService) Search(ctx context.Context, identity model.Identity, query string) ([]model.Document, error) {
	args := m.Called(ctx, identity, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}
