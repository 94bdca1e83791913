package model

// RoleUser is the role assigned to self-registered accounts.
const RoleUser = "user"

// UserAccount is the canonical authenticated-user record, a denormalized copy
// of the remote profile document. JSON tags match the document field names.
type UserAccount struct {
	ID        string `json:"userID"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// Equal reports whether two records refer to the same account.
// Identity is keyed by ID alone; other fields do not participate.
func (u UserAccount) Equal(other UserAccount) bool {
	return u.ID == other.ID
}

// FullName returns the display name sent to the remote account service.
func (u UserAccount) FullName() string {
	return u.FirstName + " " + u.LastName
}
