// Package session tracks the signed-in user and resolves the identity that
// progress is recorded for.
package session

import "github.com/daxvengers/daxvengers/internal/observable"

// GuestUserID is the placeholder identity used before anyone signs in. It is
// never issued to an authenticated user.
const GuestUserID = "demo-user"

// User is the signed-in user. Empty strings stand for unknown values.
type User struct {
	ID              string
	Username        string
	Email           string
	IsAuthenticated bool
}

// IsZero reports whether u carries no identity.
func (u User) IsZero() bool { return u.ID == "" }

// Adapter owns the current User. Other components read it through UserID,
// Current or a subscription.
type Adapter struct {
	user *observable.Value[User]
}

// NewAdapter creates an Adapter with no signed-in user.
func NewAdapter() *Adapter {
	return &Adapter{user: observable.New(User{})}
}

// Login records u as the current user.
func (a *Adapter) Login(u User) {
	a.user.Set(u)
}

// InitGuest signs in a guest profile under id, or GuestUserID when id is empty.
func (a *Adapter) InitGuest(id string) {
	if id == "" {
		id = GuestUserID
	}
	a.user.Set(User{
		ID:              id,
		Username:        "DAXVenger",
		Email:           "user@daxvengers.com",
		IsAuthenticated: true,
	})
}

// Logout clears the current user.
func (a *Adapter) Logout() {
	a.user.Set(User{})
}

// Current returns the current user.
func (a *Adapter) Current() User {
	return a.user.Get()
}

// UserID returns the current user's id, or GuestUserID if nobody is signed in.
func (a *Adapter) UserID() string {
	if id := a.user.Get().ID; id != "" {
		return id
	}
	return GuestUserID
}

// IsAuthenticated reports whether a user is signed in.
func (a *Adapter) IsAuthenticated() bool {
	return a.user.Get().IsAuthenticated
}

// Subscribe registers fn to receive every change of the current user,
// including sign-out (a zero User).
func (a *Adapter) Subscribe(fn func(User)) (unsubscribe func()) {
	return a.user.Subscribe(fn)
}

// IsGuest reports whether id is the guest placeholder.
func IsGuest(id string) bool {
	return id == GuestUserID
}
