package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create inserts a new user account
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email, used by login
	GetByEmail(ctx context.Context, email string) (User, error)

	// List retrieves all user accounts
	List(ctx context.Context) ([]User, error)
}
