package domain

// User is a registered account. PasswordHash is kept only in the stored
// users collection and is stripped from any session-visible copy.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Session returns a copy of the user safe to expose as the current session.
func (u User) Session() User {
	u.PasswordHash = ""
	return u
}
