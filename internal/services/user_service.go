package services

import (
	"fmt"

	"gerai/internal/models"
	"gerai/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic for user administration. Account
// self-service (register, login, refresh) lives in AuthService; this
// service covers the management surface behind the JWT middleware.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// CreateUser creates a new user with a hashed password. Username and
// email must be unused.
func (s *UserService) CreateUser(user *models.User) error {
	if existing, err := s.repo.GetByUsername(user.Username); err == nil && existing != nil {
		return fmt.Errorf("username '%s' already taken", user.Username)
	}
	if existing, err := s.repo.GetByEmail(user.Email); err == nil && existing != nil {
		return fmt.Errorf("email '%s' already registered", user.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.repo.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateUser modifies an existing user. An empty password keeps the
// stored hash; a non-empty one is re-hashed.
func (s *UserService) UpdateUser(user *models.User) error {
	existing, err := s.repo.GetByID(user.ID)
	if err != nil {
		return err
	}

	if user.Password == "" {
		user.Password = existing.Password
	} else {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashedPassword)
	}

	if err := s.repo.Update(user); err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	return nil
}

// DeleteUser removes a user by their ID.
func (s *UserService) DeleteUser(id string) error {
	return s.repo.Delete(id)
}
