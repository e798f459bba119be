package domain

import (
	"context"
	"time"
)

// User represents a registered account. The Password field always holds the
// bcrypt digest, never the plaintext, and must not leave the auth path.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProfile is the public view of a user, safe to return to any caller.
type UserProfile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile strips the credential fields off a User.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// AuthResult is what a successful register or login hands back.
type AuthResult struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// Insert creates a new user account and backfills the ID.
	// Returns ErrConflict if the email is already taken.
	Insert(ctx context.Context, u *User) error

	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByEmail retrieves a user by their unique email.
	// Used during login to verify credentials.
	GetByEmail(ctx context.Context, email string) (User, error)
}

// AuthUsecase defines the business logic contract for account operations.
type AuthUsecase interface {
	// Register creates a new account and issues a session token.
	// Returns ErrConflict if the email is already registered.
	Register(ctx context.Context, name, email, password string) (AuthResult, error)

	// Login verifies credentials and issues a session token.
	// Returns ErrAuthentication if the user is absent, inactive,
	// or the password does not match.
	Login(ctx context.Context, email, password string) (AuthResult, error)

	// Profile returns the public profile of the given user.
	Profile(ctx context.Context, userID int64) (UserProfile, error)
}
