package domain

// AuthenticatableEntity is the capability an entity needs to be bound to a
// login session: a stable id to store in the session cookie and an
// authentication predicate.
type AuthenticatableEntity interface {
	AuthID() int64
	IsAuthenticated() bool
}

var _ AuthenticatableEntity = (*User)(nil)
