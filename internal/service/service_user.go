package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/store"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

// userService is the concrete implementation of UserService.
// Passwords are stored as bcrypt hashes.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashCost is the bcrypt work factor.
	hashCost int

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hashCost:       bcrypt.DefaultCost,
		logger:         logger,
	}
}

// CreateUser replaces the password with its bcrypt hash and delegates
// persistence to the repository. Field values are stored as given; empty
// strings are accepted like the store accepts them.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the password is too long for bcrypt.
//   - a wrapped storage error (e.g. store.ErrEmailAlreadyExists).
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = string(hash)

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Debug().Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("error deleting user %d: %w", id, err)
	}
	logger.FromContext(ctx).Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
