package model

// ProfileStore caches the signed-in user's profile on the device. At most one
// record exists at a time; Save replaces any previous value unconditionally.
type ProfileStore interface {
	Save(account UserAccount) error
	// Load returns nil without error when no usable record is cached.
	Load() (*UserAccount, error)
	// Clear is idempotent; clearing an empty store is not an error.
	Clear() error
}
