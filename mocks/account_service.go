// Package mocks contains testify mocks for the model interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lifefellowship/fellowship-client/model"
)

// AccountService is a mock of model.AccountService.
type AccountService struct {
	mock.Mock
}

var _ model.AccountService = (*AccountService)(nil)

func (m *AccountService) CreateAccount(ctx context.Context, email, password, name string) (model.RemoteUser, error) {
	args := m.Called(ctx, email, password, name)
	return args.Get(0).(model.RemoteUser), args.Error(1)
}

func (m *AccountService) CreateEmailSession(ctx context.Context, email, password string) (model.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *AccountService) CreatePhoneToken(ctx context.Context, phone string) (model.Token, error) {
	args := m.Called(ctx, phone)
	return args.Get(0).(model.Token), args.Error(1)
}

func (m *AccountService) CreatePhoneSession(ctx context.Context, userID, code string) (model.Session, error) {
	args := m.Called(ctx, userID, code)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *AccountService) GetCurrentSession(ctx context.Context) (model.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *AccountService) DeleteCurrentSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *AccountService) UpdateName(ctx context.Context, name string) (model.RemoteUser, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.RemoteUser), args.Error(1)
}

func (m *AccountService) UpdateEmail(ctx context.Context, email, password string) (model.RemoteUser, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.RemoteUser), args.Error(1)
}

func (m *AccountService) CreatePassword(ctx context.Context, password string) (model.RemoteUser, error) {
	args := m.Called(ctx, password)
	return args.Get(0).(model.RemoteUser), args.Error(1)
}

func (m *AccountService) UpdatePassword(ctx context.Context, newPassword, oldPassword string) (model.RemoteUser, error) {
	args := m.Called(ctx, newPassword, oldPassword)
	return args.Get(0).(model.RemoteUser), args.Error(1)
}
