package identity

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	valid := User{ID: "1", Email: "demo@example.com", Name: "Demo User", Role: RoleAthlete}

	cases := []struct {
		name    string
		mutate  func(*User)
		wantErr bool
	}{
		{name: "athlete ok", mutate: func(u *User) {}},
		{name: "coach ok", mutate: func(u *User) { u.Role = RoleCoach }},
		{name: "optional profile fields ok", mutate: func(u *User) { u.Age = 31; u.Height = 1.82; u.Weight = 74 }},
		{name: "missing id", mutate: func(u *User) { u.ID = "" }, wantErr: true},
		{name: "blank email", mutate: func(u *User) { u.Email = "  " }, wantErr: true},
		{name: "missing name", mutate: func(u *User) { u.Name = "" }, wantErr: true},
		{name: "unknown role", mutate: func(u *User) { u.Role = "admin" }, wantErr: true},
		{name: "empty role", mutate: func(u *User) { u.Role = "" }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := valid
			tc.mutate(&user)

			err := user.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidUser) {
					t.Fatalf("expected ErrInvalidUser, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
