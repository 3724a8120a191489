package repositories

import (
	"fmt"
	"time"

	"wegotboard/internal/models"

	"gorm.io/datatypes"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users *memoryCollection[models.User]
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: newMemoryCollection("user", func(u *models.User) *string { return &u.ID }),
	}
}

func (r *MockUserRepository) Create(user *models.User) error {
	if _, err := r.GetByEmail(user.Email); err == nil {
		return fmt.Errorf("failed to create user: email %s already exists", user.Email)
	}
	if user.Favorites == nil {
		user.Favorites = datatypes.JSONSlice[string]{}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := cloneUser(user)
	if err := r.users.insert(stored); err != nil {
		return err
	}
	user.ID = stored.ID
	return nil
}

func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	user, err := r.users.get(id)
	if err != nil {
		return nil, err
	}
	return cloneUser(user), nil
}

func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	matches := r.users.all(func(u *models.User) bool { return u.Email == email })
	if len(matches) == 0 {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
	}
	return cloneUser(&matches[0]), nil
}

func (r *MockUserRepository) Update(user *models.User) error {
	user.UpdatedAt = time.Now()
	return r.users.replace(cloneUser(user))
}

func (r *MockUserRepository) Delete(id string) error {
	return r.users.remove(id)
}

// cloneUser copies the favorites backing array so callers cannot mutate stored state.
func cloneUser(u *models.User) *models.User {
	c := *u
	c.Favorites = append(datatypes.JSONSlice[string]{}, u.Favorites...)
	return &c
}
