// model/user.go
package model

import (
	"encoding/json"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Country   string    `json:"country"`
	Role      Role      `json:"-"`
	Libraries []string  `json:"libraries"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveRole returns the user's role, treating an unset role as member.
func (u User) EffectiveRole() Role {
	if u.Role == nil {
		return Member
	}
	return u.Role
}

func (u User) IsAdmin() bool {
	_, ok := u.EffectiveRole().(AdminRole)
	return ok
}

type userJSON struct {
	userAlias
	RoleName string `json:"role"`
}

type userAlias User

func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userJSON{userAlias: userAlias(u), RoleName: u.EffectiveRole().String()})
}

func (u *User) UnmarshalJSON(data []byte) error {
	var raw userJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	role, err := ParseRole(raw.RoleName)
	if err != nil {
		return err
	}
	*u = User(raw.userAlias)
	u.Role = role
	return nil
}

// LibrariesUpdate is the body of a membership change.
type LibrariesUpdate struct {
	Libraries []string `json:"libraries" binding:"required"`
}
