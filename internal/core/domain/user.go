package domain

// User is the sole admin account. The application treats the first (and only)
// row in the user table as the logged-in identity.
type User struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Username string `db:"username"`
	Password string `db:"password"` // bcrypt hashed
}

func NewUser(name, username, hashedPassword string) *User {
	return &User{
		Name:     name,
		Username: username,
		Password: hashedPassword,
	}
}

// AuthID implements AuthenticatableEntity.
func (u *User) AuthID() int64 {
	return u.ID
}

// IsAuthenticated implements AuthenticatableEntity. A user loaded from the
// store is always an authenticated identity; anonymous visitors have no User.
func (u *User) IsAuthenticated() bool {
	return u != nil && u.ID != 0
}
