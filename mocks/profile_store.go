package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/lifefellowship/fellowship-client/model"
)

// ProfileStore is a mock of model.ProfileStore.
type ProfileStore struct {
	mock.Mock
}

var _ model.ProfileStore = (*ProfileStore)(nil)

func (m *ProfileStore) Save(account model.UserAccount) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *ProfileStore) Load() (*model.UserAccount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserAccount), args.Error(1)
}

func (m *ProfileStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}
