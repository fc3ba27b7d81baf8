package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/daygrove/daygrove-backend/internal/models"
	"github.com/daygrove/daygrove-backend/pkg/utils"
	"github.com/google/uuid"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const defaultAvatar = "/placeholder.svg?height=40&width=40"

// UserService owns the user records stored under user:<email>. The email is
// the primary key; the generated ID is only a reference value used in other
// resources' keys and likedBy sets.
type UserService struct {
	kv KV
}

func NewUserService(kv KV) *UserService {
	return &UserService{kv: kv}
}

func userKey(email string) string {
	return "user:" + strings.ToLower(strings.TrimSpace(email))
}

// Create registers a new user with an argon2id-hashed password.
func (s *UserService) Create(ctx context.Context, email, name, password string) (models.User, error) {
	key := userKey(email)

	var existing models.User
	found, err := fetchRecord(ctx, s.kv, key, &existing)
	if err != nil {
		return models.User{}, err
	}
	if found {
		return models.User{}, ErrUserExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Name:         name,
		PasswordHash: hash,
		Avatar:       defaultAvatar,
		JoinDate:     time.Now().Format(time.RFC3339),
		Plan:         "free",
		Settings: models.UserSettings{
			Notifications: true,
			PublicProfile: false,
			EmailUpdates:  true,
		},
	}

	if err := storeRecord(ctx, s.kv, key, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate verifies the password against the stored hash. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	var user models.User
	found, err := fetchRecord(ctx, s.kv, userKey(email), &user)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}

	ok, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Get fetches a user by email.
func (s *UserService) Get(ctx context.Context, email string) (models.User, error) {
	var user models.User
	found, err := fetchRecord(ctx, s.kv, userKey(email), &user)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// UserUpdate is a partial profile update. Email and credentials never change
// through this path.
type UserUpdate struct {
	Name     *string              `json:"name,omitempty"`
	Avatar   *string              `json:"avatar,omitempty"`
	Plan     *string              `json:"plan,omitempty"`
	Settings *models.UserSettings `json:"settings,omitempty"`
}

// Update shallow-merges the update over the stored record and writes it back.
func (s *UserService) Update(ctx context.Context, email string, updates UserUpdate) (models.User, error) {
	key := userKey(email)

	var user models.User
	found, err := fetchRecord(ctx, s.kv, key, &user)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}

	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.Avatar != nil {
		user.Avatar = *updates.Avatar
	}
	if updates.Plan != nil {
		user.Plan = *updates.Plan
	}
	if updates.Settings != nil {
		user.Settings = *updates.Settings
	}

	if err := storeRecord(ctx, s.kv, key, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
