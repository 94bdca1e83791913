package appwrite

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/lifefellowship/fellowship-client/model"
)

var _ model.AccountService = (*Account)(nil)

// Account implements model.AccountService against the /account API.
type Account struct {
	client *Client
}

// NewAccount creates a new Account adapter.
func NewAccount(client *Client) *Account {
	return &Account{
		client: client,
	}
}

type userResponse struct {
	ID        string `json:"$id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"$createdAt"`
}

func (r userResponse) toModel() model.RemoteUser {
	return model.RemoteUser{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
	}
}

type sessionResponse struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Expire string `json:"expire"`
}

func (r sessionResponse) toModel() model.Session {
	return model.Session{
		ID:     r.ID,
		UserID: r.UserID,
		Expire: r.Expire,
	}
}

type tokenResponse struct {
	UserID    string `json:"userId"`
	CreatedAt string `json:"$createdAt"`
}

// CreateAccount registers a new account under a fresh unique id.
func (a *Account) CreateAccount(ctx context.Context, email, password, name string) (model.RemoteUser, error) {
	body := map[string]string{
		"userId":   uuid.NewString(),
		"email":    email,
		"password": password,
		"name":     name,
	}

	var resp userResponse
	if err := a.client.do(ctx, http.MethodPost, "/account", body, &resp); err != nil {
		return model.RemoteUser{}, fmt.Errorf("failed to create account: %w", err)
	}

	return resp.toModel(), nil
}

// CreateEmailSession authenticates with email and password.
func (a *Account) CreateEmailSession(ctx context.Context, email, password string) (model.Session, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp sessionResponse
	if err := a.client.do(ctx, http.MethodPost, "/account/sessions/email", body, &resp); err != nil {
		return model.Session{}, fmt.Errorf("failed to create email session: %w", err)
	}

	return resp.toModel(), nil
}

// CreatePhoneToken dispatches a one-time code to the phone number and returns
// the provisional token holding the user id for the later code exchange.
func (a *Account) CreatePhoneToken(ctx context.Context, phone string) (model.Token, error) {
	body := map[string]string{
		"userId": uuid.NewString(),
		"phone":  phone,
	}

	var resp tokenResponse
	if err := a.client.do(ctx, http.MethodPost, "/account/tokens/phone", body, &resp); err != nil {
		return model.Token{}, fmt.Errorf("failed to create phone token: %w", err)
	}

	return model.Token{UserID: resp.UserID, CreatedAt: resp.CreatedAt}, nil
}

// CreatePhoneSession exchanges a provisional user id and one-time code for a
// session.
func (a *Account) CreatePhoneSession(ctx context.Context, userID, code string) (model.Session, error) {
	body := map[string]string{
		"userId": userID,
		"secret": code,
	}

	var resp sessionResponse
	if err := a.client.do(ctx, http.MethodPost, "/account/sessions/token", body, &resp); err != nil {
		return model.Session{}, fmt.Errorf("failed to create phone session: %w", err)
	}

	return resp.toModel(), nil
}

// GetCurrentSession returns the session held by the client, if any.
func (a *Account) GetCurrentSession(ctx context.Context) (model.Session, error) {
	var resp sessionResponse
	if err := a.client.do(ctx, http.MethodGet, "/account/sessions/current", nil, &resp); err != nil {
		return model.Session{}, fmt.Errorf("failed to get current session: %w", err)
	}

	return resp.toModel(), nil
}

// DeleteCurrentSession logs the client out of its current session.
func (a *Account) DeleteCurrentSession(ctx context.Context) error {
	if err := a.client.do(ctx, http.MethodDelete, "/account/sessions/current", nil, nil); err != nil {
		return fmt.Errorf("failed to delete current session: %w", err)
	}

	return nil
}

// UpdateName changes the display name of the authenticated account.
func (a *Account) UpdateName(ctx context.Context, name string) (model.RemoteUser, error) {
	var resp userResponse
	if err := a.client.do(ctx, http.MethodPatch, "/account/name", map[string]string{"name": name}, &resp); err != nil {
		return model.RemoteUser{}, fmt.Errorf("failed to update name: %w", err)
	}

	return resp.toModel(), nil
}

// UpdateEmail changes the email of the authenticated account. The current
// password is required by the service.
func (a *Account) UpdateEmail(ctx context.Context, email, password string) (model.RemoteUser, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp userResponse
	if err := a.client.do(ctx, http.MethodPatch, "/account/email", body, &resp); err != nil {
		return model.RemoteUser{}, fmt.Errorf("failed to update email: %w", err)
	}

	return resp.toModel(), nil
}

// CreatePassword sets the first password on an account that has none, such as
// a phone-first signup.
func (a *Account) CreatePassword(ctx context.Context, password string) (model.RemoteUser, error) {
	var resp userResponse
	if err := a.client.do(ctx, http.MethodPatch, "/account/password", map[string]string{"password": password}, &resp); err != nil {
		return model.RemoteUser{}, fmt.Errorf("failed to set password: %w", err)
	}

	return resp.toModel(), nil
}

// UpdatePassword replaces the account password, verifying the old one.
func (a *Account) UpdatePassword(ctx context.Context, newPassword, oldPassword string) (model.RemoteUser, error) {
	body := map[string]string{
		"password":    newPassword,
		"oldPassword": oldPassword,
	}

	var resp userResponse
	if err := a.client.do(ctx, http.MethodPatch, "/account/password", body, &resp); err != nil {
		return model.RemoteUser{}, fmt.Errorf("failed to update password: %w", err)
	}

	return resp.toModel(), nil
}
