package models

// UserSettings are client preference flags carried on the user record.
type UserSettings struct {
	Notifications bool `json:"notifications"`
	PublicProfile bool `json:"publicProfile"`
	EmailUpdates  bool `json:"emailUpdates"`
}

// User is stored under user:<email>; the email is the primary key, not the ID.
// PasswordHash is an argon2id hash and is never serialized to clients.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	PasswordHash string       `json:"passwordHash,omitempty"`
	Avatar       string       `json:"avatar"`
	JoinDate     string       `json:"joinDate"`
	Plan         string       `json:"plan"` // free, pro, premium; gates no server behavior
	Settings     UserSettings `json:"settings"`
}

// Public returns a copy safe to serialize to clients (credential hash removed).
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
