package session

import "testing"

func TestAdapter_GuestFallback(t *testing.T) {
	a := NewAdapter()
	if got := a.UserID(); got != GuestUserID {
		t.Errorf("UserID() = %q, want %q", got, GuestUserID)
	}
	if a.IsAuthenticated() {
		t.Error("expected unauthenticated adapter")
	}
	if !a.Current().IsZero() {
		t.Error("expected zero user")
	}
}

func TestAdapter_LoginLogout(t *testing.T) {
	a := NewAdapter()
	a.Login(User{ID: "u1", Username: "ana", Email: "ana@example.com", IsAuthenticated: true})

	if got := a.UserID(); got != "u1" {
		t.Errorf("UserID() = %q, want %q", got, "u1")
	}
	if !a.IsAuthenticated() {
		t.Error("expected authenticated after login")
	}

	a.Logout()
	if got := a.UserID(); got != GuestUserID {
		t.Errorf("UserID() after logout = %q, want %q", got, GuestUserID)
	}
}

func TestAdapter_InitGuest(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"", GuestUserID},
		{"local-42", "local-42"},
	}
	for _, tt := range tests {
		a := NewAdapter()
		a.InitGuest(tt.id)
		if got := a.UserID(); got != tt.want {
			t.Errorf("InitGuest(%q): UserID() = %q, want %q", tt.id, got, tt.want)
		}
		if a.Current().Username != "DAXVenger" {
			t.Errorf("Username = %q, want DAXVenger", a.Current().Username)
		}
	}
}

func TestAdapter_Subscribe(t *testing.T) {
	a := NewAdapter()
	var ids []string
	unsub := a.Subscribe(func(u User) { ids = append(ids, u.ID) })

	a.Login(User{ID: "u1", IsAuthenticated: true})
	a.Logout()
	unsub()
	a.Login(User{ID: "u2"})

	if len(ids) != 2 || ids[0] != "u1" || ids[1] != "" {
		t.Errorf("ids = %v, want [u1 \"\"]", ids)
	}
}

func TestIsGuest(t *testing.T) {
	if !IsGuest(GuestUserID) {
		t.Error("IsGuest(GuestUserID) = false")
	}
	if IsGuest("u1") {
		t.Error("IsGuest(u1) = true")
	}
}
