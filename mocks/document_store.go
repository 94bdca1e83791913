package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lifefellowship/fellowship-client/model"
)

// DocumentStore is a mock of model.DocumentStore.
type DocumentStore struct {
	mock.Mock
}

var _ model.DocumentStore = (*DocumentStore)(nil)

func (m *DocumentStore) GetDocument(ctx context.Context, collectionID, documentID string) (model.UserAccount, error) {
	args := m.Called(ctx, collectionID, documentID)
	return args.Get(0).(model.UserAccount), args.Error(1)
}

func (m *DocumentStore) CreateDocument(ctx context.Context, collectionID, documentID string, account model.UserAccount) error {
	args := m.Called(ctx, collectionID, documentID, account)
	return args.Error(0)
}

func (m *DocumentStore) UpdateDocument(ctx context.Context, collectionID, documentID string, account model.UserAccount) error {
	args := m.Called(ctx, collectionID, documentID, account)
	return args.Error(0)
}

func (m *DocumentStore) DeleteDocument(ctx context.Context, collectionID, documentID string) error {
	args := m.Called(ctx, collectionID, documentID)
	return args.Error(0)
}
