package testutil

import (
	"context"

	"github.com/haatos/algosnip/internal/service"
	"github.com/haatos/algosnip/internal/store"
	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Rescan(ctx context.Context) (*service.RescanResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RescanResult), nil
}

func (m *MockCatalogService) GetSnippet(
	ctx context.Context,
	name string,
) (*store.Snippet, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Snippet), nil
}

func (m *MockCatalogService) ListSnippets(ctx context.Context) ([]*store.Snippet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Snippet), nil
}

func (m *MockCatalogService) RenderBundle(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(string), args.Error(1)
}

func (m *MockCatalogService) RenderVSCode(ctx context.Context, scope string) ([]byte, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), nil
}
