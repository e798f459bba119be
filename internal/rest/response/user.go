package response

import "github.com/pagetalk/comment-api/domain"

type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func NewUserFromProfile(p domain.UserProfile) User {
	return User{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		CreatedAt: p.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: p.UpdatedAt.Format(DateTimeFormat),
	}
}

// Auth is the register/login payload: the user summary plus the session token.
type Auth struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

func NewAuthFromDomain(r domain.AuthResult) Auth {
	return Auth{
		User:  NewUserFromProfile(r.User),
		Token: r.Token,
	}
}
