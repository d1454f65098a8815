package repositories

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-ticket-registry/internal/docstore"
	"github.com/sbilibin2017/gw-ticket-registry/internal/logger"
	"github.com/sbilibin2017/gw-ticket-registry/internal/models"
)

// UserFileRepository stores users in one JSON document.
type UserFileRepository struct {
	docs *docstore.Store[models.User]
}

// NewUserFileRepository creates a repository over docs.
func NewUserFileRepository(docs *docstore.Store[models.User]) *UserFileRepository {
	return &UserFileRepository{docs: docs}
}

// List returns all users in storage order.
func (r *UserFileRepository) List(ctx context.Context) ([]models.User, error) {
	users, err := r.docs.Load(ctx)

	logger.Log.Infow(
		"users.list",
		"result", len(users),
		"error", err,
	)

	return users, err
}

// GetByUsernameOrEmail returns the first user whose username matches
// username or whose email matches email, both compared case-insensitively.
// Nil arguments are ignored. It returns nil when nothing matches.
func (r *UserFileRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.User, error) {
	users, err := r.docs.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load users", "error", err)
		return nil, err
	}

	for i := range users {
		if (username != nil && sameKey(users[i].Username, *username)) ||
			(email != nil && sameKey(users[i].Email, *email)) {
			logger.Log.Infow(
				"users.get",
				"args", []any{deref(username), deref(email)},
				"result", users[i].ID,
			)
			return &users[i], nil
		}
	}

	logger.Log.Infow(
		"users.get",
		"args", []any{deref(username), deref(email)},
		"result", nil,
	)
	return nil, nil
}

// Create appends user with the next id. The username and email must be
// unique across the document.
func (r *UserFileRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	err := r.docs.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		if err := checkUnique(users, user.Username, user.Email); err != nil {
			return nil, err
		}
		user.ID = nextUserID(users)
		return append(users, user), nil
	})

	logger.Log.Infow(
		"users.create",
		"args", []any{user.Username, user.Email, user.Role},
		"result", user.ID,
		"error", err,
	)

	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// SetRole assigns role to the user with the given username.
func (r *UserFileRepository) SetRole(ctx context.Context, username string, role models.Role) (models.User, error) {
	var updated models.User
	err := r.docs.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := indexByUsername(users, username)
		if i < 0 {
			return nil, ErrNotFound
		}
		users[i].Role = role
		updated = users[i]
		return users, nil
	})

	logger.Log.Infow(
		"users.set_role",
		"args", []any{username, role},
		"error", err,
	)

	return updated, err
}

// Delete removes the user with the given username. Admins cannot be
// removed.
func (r *UserFileRepository) Delete(ctx context.Context, username string) error {
	err := r.docs.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := indexByUsername(users, username)
		if i < 0 {
			return nil, ErrNotFound
		}
		if users[i].IsAdmin() {
			return nil, ErrForbidden
		}
		return append(users[:i], users[i+1:]...), nil
	})

	logger.Log.Infow(
		"users.delete",
		"args", []any{username},
		"error", err,
	)

	return err
}

// SetResetToken stores reset on the user matched by login, trying email
// first and username second. Any previous token is replaced.
func (r *UserFileRepository) SetResetToken(ctx context.Context, login string, reset models.ResetToken) (models.User, error) {
	var updated models.User
	err := r.docs.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := indexByEmail(users, login)
		if i < 0 {
			i = indexByUsername(users, login)
		}
		if i < 0 {
			return nil, ErrNotFound
		}
		users[i].Reset = &models.ResetToken{Token: reset.Token, Expires: reset.Expires}
		updated = users[i]
		return users, nil
	})

	logger.Log.Infow(
		"users.set_reset_token",
		"args", []any{login, reset.Expires},
		"error", err,
	)

	return updated, err
}

// ResetPassword replaces the password hash of the user with the given email
// if token matches the pending reset token and has not expired at now. The
// pending token is consumed on success.
func (r *UserFileRepository) ResetPassword(ctx context.Context, email, token, passwordHash string, now time.Time) error {
	err := r.docs.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := indexByEmail(users, email)
		if i < 0 {
			return nil, ErrNotFound
		}
		pending := users[i].Reset
		if pending == nil || pending.Token == "" ||
			subtle.ConstantTimeCompare([]byte(pending.Token), []byte(token)) != 1 ||
			now.After(pending.Expires) {
			return nil, ErrInvalidOrExpiredToken
		}
		users[i].PasswordHash = passwordHash
		users[i].Reset = nil
		return users, nil
	})

	logger.Log.Infow(
		"users.reset_password",
		"args", []any{email},
		"error", err,
	)

	return err
}

func checkUnique(users []models.User, username, email string) error {
	for _, u := range users {
		if sameKey(u.Username, username) {
			return ErrDuplicateUsername
		}
	}
	for _, u := range users {
		if sameKey(u.Email, email) {
			return ErrDuplicateEmail
		}
	}
	return nil
}

func nextUserID(users []models.User) int64 {
	var maxID int64
	for _, u := range users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}

func indexByUsername(users []models.User, username string) int {
	for i := range users {
		if sameKey(users[i].Username, username) {
			return i
		}
	}
	return -1
}

func indexByEmail(users []models.User, email string) int {
	for i := range users {
		if sameKey(users[i].Email, email) {
			return i
		}
	}
	return -1
}

// sameKey compares unique keys the way the stores index them.
func sameKey(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
