package model

// Session is a server-issued proof of authentication. Expire is kept in the
// remote service's string form and parsed by the session manager.
type Session struct {
	ID     string
	UserID string
	Expire string
}

// Token is a provisional credential issued when a one-time code is dispatched
// to a phone number. Its UserID is later exchanged, together with the code,
// for a session.
type Token struct {
	UserID    string
	CreatedAt string
}

// RemoteUser is the account record as the remote identity service returns it.
type RemoteUser struct {
	ID        string
	Email     string
	Name      string
	Phone     string
	CreatedAt string
}
