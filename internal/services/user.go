package services

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-ticket-registry/internal/clock"
	"github.com/sbilibin2017/gw-ticket-registry/internal/logger"
	"github.com/sbilibin2017/gw-ticket-registry/internal/models"
)

// DefaultResetTTL is how long a password reset token stays valid.
const DefaultResetTTL = time.Hour

// UserRepository persists users and enforces the store invariants.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	SetRole(ctx context.Context, username string, role models.Role) (models.User, error)
	Delete(ctx context.Context, username string) error
	SetResetToken(ctx context.Context, login string, reset models.ResetToken) (models.User, error)
	ResetPassword(ctx context.Context, email, token, passwordHash string, now time.Time) error
}

// Hasher is a one-way password hashing function.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenGenerator produces unpredictable opaque tokens.
type TokenGenerator interface {
	Generate() (string, error)
}

// ResetNotifier delivers password reset tokens to their owners.
type ResetNotifier interface {
	NotifyReset(ctx context.Context, notice models.ResetNotice) error
}

// JWTGenerator issues access tokens for authenticated users.
type JWTGenerator interface {
	Generate(ctx context.Context, user models.PublicUser) (string, error)
}

// UserService handles registration, authentication, administration and
// password reset of user accounts.
type UserService struct {
	repo     UserRepository
	hasher   Hasher
	tokens   TokenGenerator
	notifier ResetNotifier
	jwt      JWTGenerator
	clock    clock.Clock
	resetTTL time.Duration

	dummyOnce sync.Once
	dummyHash string
}

// UserServiceOption configures a UserService.
type UserServiceOption func(*UserService)

// WithClock replaces the wall clock used for reset expiry.
func WithClock(c clock.Clock) UserServiceOption {
	return func(s *UserService) { s.clock = c }
}

// WithResetTTL sets the lifetime of reset tokens.
func WithResetTTL(ttl time.Duration) UserServiceOption {
	return func(s *UserService) {
		if ttl > 0 {
			s.resetTTL = ttl
		}
	}
}

// NewUserService creates a new UserService instance.
func NewUserService(
	repo UserRepository,
	hasher Hasher,
	tokens TokenGenerator,
	notifier ResetNotifier,
	jwt JWTGenerator,
	opts ...UserServiceOption,
) *UserService {
	s := &UserService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		notifier: notifier,
		jwt:      jwt,
		clock:    clock.Real(),
		resetTTL: DefaultResetTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a user account. role becomes admin only for the literal
// "admin" in any case.
func (s *UserService) Register(ctx context.Context, fullname, username, email, password, role string) (*models.PublicUser, error) {
	fullname = strings.TrimSpace(fullname)
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if fullname == "" || username == "" || email == "" || password == "" {
		return nil, ErrMissingField
	}

	// Reject obvious duplicates before paying for the hash. Username is
	// checked before email, the same order Create uses under the write lock.
	if err := s.checkAvailable(ctx, username, email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := s.repo.Create(ctx, models.User{
		Fullname:     fullname,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.ParseRole(role),
	})
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, err
	}

	pub := user.Public()
	logger.Log.Infow("user registered", "user_id", pub.ID, "username", pub.Username, "role", pub.Role)
	return &pub, nil
}

// Authenticate verifies username and password. Unknown users and wrong
// passwords both yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.PublicUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingField
	}

	user, err := s.repo.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		// Spend the same hashing work as a real comparison.
		s.hasher.Verify(password, s.dummy())
		logger.Log.Warnw("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		logger.Log.Warnw("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	pub := user.Public()
	return &pub, nil
}

// Login authenticates the user and returns an access token.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *models.PublicUser, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.jwt.Generate(ctx, *user)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// List returns every user without credential or reset state, in storage
// order.
func (s *UserService) List(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// Promote grants the admin role to username. Promoting an admin is a no-op.
func (s *UserService) Promote(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrMissingField
	}

	user, err := s.repo.SetRole(ctx, username, models.RoleAdmin)
	if err != nil {
		logger.Log.Errorw("failed to promote user", "username", username, "err", err)
		return err
	}

	logger.Log.Infow("user promoted", "user_id", user.ID, "username", user.Username)
	return nil
}

// Delete removes a non-admin user.
func (s *UserService) Delete(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrMissingField
	}

	if err := s.repo.Delete(ctx, username); err != nil {
		logger.Log.Errorw("failed to delete user", "username", username, "err", err)
		return err
	}

	logger.Log.Infow("user deleted", "username", username)
	return nil
}

// RequestReset issues a reset token for the user matched by email, or by
// username when no email matches, and hands it to the notifier. Any
// earlier pending token is superseded. A failed hand-off yields
// ErrResetDelivery; the stored token is then known to nobody and is
// replaced by the next request.
func (s *UserService) RequestReset(ctx context.Context, emailOrUsername string) (string, error) {
	login := strings.TrimSpace(emailOrUsername)
	if login == "" {
		return "", ErrMissingField
	}

	token, err := s.tokens.Generate()
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "err", err)
		return "", err
	}
	expires := s.clock.Now().Add(s.resetTTL)

	user, err := s.repo.SetResetToken(ctx, login, models.ResetToken{Token: token, Expires: expires})
	if err != nil {
		logger.Log.Errorw("failed to store reset token", "login", login, "err", err)
		return "", err
	}

	notice := models.ResetNotice{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expires.Unix(),
	}
	if err := s.notifier.NotifyReset(ctx, notice); err != nil {
		logger.Log.Errorw("failed to deliver reset token", "user_id", user.ID, "err", err)
		return "", fmt.Errorf("%w: %w", ErrResetDelivery, err)
	}

	logger.Log.Infow("password reset requested", "user_id", user.ID, "expires", expires)
	return token, nil
}

// ResetPassword replaces the password of the user with email when token is
// the pending, unexpired reset token. The token is consumed.
func (s *UserService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	email = strings.TrimSpace(email)
	if email == "" || token == "" || newPassword == "" {
		return ErrMissingField
	}

	// Cheap rejection before hashing; the repository re-checks under the
	// write lock.
	user, err := s.repo.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if !tokenUsable(user.Reset, token, s.clock.Now()) {
		logger.Log.Warnw("invalid or expired reset token", "user_id", user.ID)
		return ErrInvalidOrExpiredToken
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := s.repo.ResetPassword(ctx, email, token, hash, s.clock.Now()); err != nil {
		logger.Log.Errorw("failed to reset password", "user_id", user.ID, "err", err)
		return err
	}

	logger.Log.Infow("password reset", "user_id", user.ID)
	return nil
}

func (s *UserService) checkAvailable(ctx context.Context, username, email string) error {
	byName, err := s.repo.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if byName != nil {
		logger.Log.Warnw("username already exists", "username", username)
		return ErrDuplicateUsername
	}

	byEmail, err := s.repo.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if byEmail != nil {
		logger.Log.Warnw("email already registered", "email", email)
		return ErrDuplicateEmail
	}
	return nil
}

func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("dummy-password-for-timing")
		if err != nil {
			logger.Log.Warnw("failed to prepare dummy hash", "err", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func tokenUsable(pending *models.ResetToken, token string, now time.Time) bool {
	return pending != nil && pending.Token != "" &&
		subtle.ConstantTimeCompare([]byte(pending.Token), []byte(token)) == 1 &&
		!now.After(pending.Expires)
}
