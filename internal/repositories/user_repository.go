package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, username, first_name, last_name, phone, password_hash,
	is_active, is_staff, is_superuser, is_verified, last_login, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &u.Phone,
		&u.PasswordHash, &u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.IsVerified,
		&u.LastLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (id, email, username, first_name, last_name, phone,
			password_hash, is_active, is_staff, is_superuser, is_verified,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())`
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, query,
		u.ID, u.Email, u.Username, u.FirstName, u.LastName, u.Phone,
		u.PasswordHash, u.IsActive, u.IsStaff, u.IsSuperuser, u.IsVerified,
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

// GetByEmail returns (nil, nil) when no user exists with that email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// GetByID returns (nil, nil) when no user exists with that id.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking email existence: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = $2, updated_at = NOW() WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("updating last login: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfileFields(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, phone = $4, updated_at = NOW()
		WHERE id = $1`,
		u.ID, u.FirstName, u.LastName, u.Phone)
	if err != nil {
		return fmt.Errorf("updating user profile fields: %w", err)
	}
	return nil
}

// GetProfile returns (nil, nil) when the user has no profile row yet.
func (r *UserRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var p models.UserProfile
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, avatar_url, bio, birth_date, address, city, country, postal_code,
			created_at, updated_at
		FROM user_profiles WHERE user_id = $1`, userID,
	).Scan(&p.ID, &p.UserID, &p.AvatarURL, &p.Bio, &p.BirthDate, &p.Address, &p.City,
		&p.Country, &p.PostalCode, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	return &p, nil
}

func (r *UserRepository) UpsertProfile(ctx context.Context, p *models.UserProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_profiles (id, user_id, avatar_url, bio, birth_date, address, city,
			country, postal_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET avatar_url = EXCLUDED.avatar_url, bio = EXCLUDED.bio,
			birth_date = EXCLUDED.birth_date, address = EXCLUDED.address,
			city = EXCLUDED.city, country = EXCLUDED.country,
			postal_code = EXCLUDED.postal_code, updated_at = NOW()`,
		p.ID, p.UserID, p.AvatarURL, p.Bio, p.BirthDate, p.Address, p.City,
		p.Country, p.PostalCode)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
