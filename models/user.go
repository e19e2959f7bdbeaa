package models

// User is a registered account row from the "users" table.
//
// PasswordHash carries the bcrypt hash of the account password. It is never
// serialized into HTTP responses; handlers respond with [UserInfo] instead.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Credentials is the request body of the register and login endpoints.
// Login requests leave Username empty.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo is the public projection of a [User] returned by the register and
// login endpoints. It deliberately excludes the password hash.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Info returns the public projection of the user.
func (u User) Info() UserInfo {
	return UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
