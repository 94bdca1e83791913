package model

import "context"

// AccountService defines the account and session operations of the remote
// identity service. Session-scoped operations act on the session held by the
// underlying client ("current").
type AccountService interface {
	CreateAccount(ctx context.Context, email, password, name string) (RemoteUser, error)
	CreateEmailSession(ctx context.Context, email, password string) (Session, error)
	CreatePhoneToken(ctx context.Context, phone string) (Token, error)
	CreatePhoneSession(ctx context.Context, userID, code string) (Session, error)
	GetCurrentSession(ctx context.Context) (Session, error)
	DeleteCurrentSession(ctx context.Context) error
	UpdateName(ctx context.Context, name string) (RemoteUser, error)
	UpdateEmail(ctx context.Context, email, password string) (RemoteUser, error)
	CreatePassword(ctx context.Context, password string) (RemoteUser, error)
	UpdatePassword(ctx context.Context, newPassword, oldPassword string) (RemoteUser, error)
}

// DocumentStore defines operations on remote profile documents.
type DocumentStore interface {
	GetDocument(ctx context.Context, collectionID, documentID string) (UserAccount, error)
	CreateDocument(ctx context.Context, collectionID, documentID string, account UserAccount) error
	UpdateDocument(ctx context.Context, collectionID, documentID string, account UserAccount) error
	DeleteDocument(ctx context.Context, collectionID, documentID string) error
}
