package user

import "context"

// AdminRepository defines data access for admin profiles.
type AdminRepository interface {
	Create(ctx context.Context, admin Admin) (Admin, error)

	// GetByUID retrieves an admin profile by its stable identity id.
	GetByUID(ctx context.Context, uid string) (Admin, error)

	// GetByEmail retrieves an admin profile by the identity-provider email.
	GetByEmail(ctx context.Context, email string) (Admin, error)

	List(ctx context.Context) ([]Admin, error)
}
