package services

import (
	"errors"
	"log"

	"wegotboard/internal/models"
	"wegotboard/internal/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// UserService handles account lifecycle, authentication and wishlists.
type UserService struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	auth        *AuthService
	events      EventPublisher
	hashCost    int
}

// NewUserService creates a new UserService. events may be nil.
func NewUserService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository, auth *AuthService, events EventPublisher) *UserService {
	return &UserService{
		userRepo:    userRepo,
		productRepo: productRepo,
		auth:        auth,
		events:      events,
		hashCost:    bcrypt.DefaultCost,
	}
}

// RegisterInput carries the fields accepted on sign-up.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	PhoneNumber  string
	IsAdmin      bool
	IsSubscribed bool
	Location     string
}

// UserPatch lists the profile fields a user may change. Nil fields are left untouched.
type UserPatch struct {
	Name         *string
	Email        *string
	Password     *string
	PhoneNumber  *string
	IsSubscribed *bool
	Location     *string
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, storeError(err, ErrUserNotFound, "get user")
	}
	return user, nil
}

// Register creates an account and returns it with a fresh session token.
func (s *UserService) Register(in RegisterInput) (*models.User, string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, "", ErrRegisterFieldsRequired
	}

	if _, err := s.userRepo.GetByEmail(in.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, "", internalError("failed to check email", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, "", internalError("failed to hash password", err)
	}

	token, err := s.auth.IssueToken(in.Email)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		Password:     string(hashedPassword),
		PhoneNumber:  in.PhoneNumber,
		IsAdmin:      in.IsAdmin,
		IsSubscribed: in.IsSubscribed,
		Location:     in.Location,
		Favorites:    datatypes.JSONSlice[string]{},
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", internalError("failed to register user", err)
	}

	publishEvent(s.events, EventUserRegistered, map[string]interface{}{
		"userID":       user.ID,
		"email":        user.Email,
		"isSubscribed": user.IsSubscribed,
	})
	return user, token, nil
}

// Login verifies the password for email and issues a new session token.
func (s *UserService) Login(email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrLoginFieldsRequired
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", storeError(err, ErrUserNotFound, "get user by email")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrPasswordIncorrect
	}

	// Saved unchanged; only updatedAt moves.
	if err := s.userRepo.Update(user); err != nil {
		return nil, "", storeError(err, ErrUserNotFound, "save user")
	}

	token, err := s.auth.IssueToken(email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout confirms the account exists. Clearing the cookie is the caller's job
// and happens whatever this returns.
func (s *UserService) Logout(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return storeError(err, ErrUserNotFound, "get user by email")
	}
	if err := s.userRepo.Update(user); err != nil {
		return storeError(err, ErrUserNotFound, "save user")
	}
	return nil
}

// UpdateProfile applies patch to the caller's own account.
func (s *UserService) UpdateProfile(identity *models.Identity, patch UserPatch) (*models.User, error) {
	user, err := s.currentUser(identity)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil && *patch.Email != user.Email {
		if _, err := s.userRepo.GetByEmail(*patch.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return nil, internalError("failed to check email", err)
		}
		user.Email = *patch.Email
	}
	if patch.Password != nil && *patch.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), s.hashCost)
		if err != nil {
			return nil, internalError("failed to hash password", err)
		}
		user.Password = string(hashedPassword)
	}
	if patch.PhoneNumber != nil {
		user.PhoneNumber = *patch.PhoneNumber
	}
	if patch.IsSubscribed != nil {
		user.IsSubscribed = *patch.IsSubscribed
	}
	if patch.Location != nil {
		user.Location = *patch.Location
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, storeError(err, ErrUserNotFound, "update user")
	}
	return user, nil
}

// DeleteAccount removes the caller's own account.
func (s *UserService) DeleteAccount(identity *models.Identity) error {
	user, err := s.currentUser(identity)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(user.ID); err != nil {
		return storeError(err, ErrUserNotFound, "delete user")
	}
	publishEvent(s.events, EventUserDeleted, map[string]interface{}{
		"userID": user.ID,
		"email":  user.Email,
	})
	return nil
}

// AddToWishlist appends productID to the caller's favorites.
func (s *UserService) AddToWishlist(identity *models.Identity, productID string) (*models.User, error) {
	if identity == nil {
		return nil, ErrNotLoggedIn
	}
	if productID == "" {
		return nil, ErrProductIDRequired
	}
	user, err := s.currentUser(identity)
	if err != nil {
		return nil, err
	}
	if user.HasFavorite(productID) {
		return nil, ErrAlreadyInWishlist
	}

	user.Favorites = append(user.Favorites, productID)
	if err := s.userRepo.Update(user); err != nil {
		return nil, storeError(err, ErrUserNotFound, "update wishlist")
	}
	return user, nil
}

// GetWishlist returns the caller's favorites resolved to products, in wishlist
// order. Products that no longer exist are left out.
func (s *UserService) GetWishlist(identity *models.Identity) ([]models.Product, error) {
	user, err := s.currentUser(identity)
	if err != nil {
		return nil, err
	}

	found, err := s.productRepo.GetByIDs(user.Favorites)
	if err != nil {
		return nil, internalError("failed to resolve wishlist", err)
	}
	byID := make(map[string]models.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	products := make([]models.Product, 0, len(user.Favorites))
	for _, id := range user.Favorites {
		if p, ok := byID[id]; ok {
			products = append(products, p)
		} else {
			log.Printf("Wishlist of user %s references missing product %s", user.ID, id)
		}
	}
	return products, nil
}

// RemoveFromWishlist drops productID from the caller's favorites.
func (s *UserService) RemoveFromWishlist(identity *models.Identity, productID string) (*models.User, error) {
	user, err := s.currentUser(identity)
	if err != nil {
		return nil, err
	}
	if !user.HasFavorite(productID) {
		return nil, ErrNotInWishlist
	}

	user.RemoveFavorite(productID)
	if err := s.userRepo.Update(user); err != nil {
		return nil, storeError(err, ErrUserNotFound, "update wishlist")
	}
	return user, nil
}

// ClearWishlist empties the caller's favorites.
func (s *UserService) ClearWishlist(identity *models.Identity) (*models.User, error) {
	user, err := s.currentUser(identity)
	if err != nil {
		return nil, err
	}

	user.Favorites = datatypes.JSONSlice[string]{}
	if err := s.userRepo.Update(user); err != nil {
		return nil, storeError(err, ErrUserNotFound, "clear wishlist")
	}
	return user, nil
}

func (s *UserService) currentUser(identity *models.Identity) (*models.User, error) {
	if identity == nil {
		return nil, ErrNotLoggedIn
	}
	return s.GetUser(identity.UserID)
}
