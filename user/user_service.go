package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
	InsertUser(ctx context.Context, user User) (User, error)
}

// allowedEmailDomains restricts registration to consumer mailboxes.
var allowedEmailDomains = []string{"gmail.com", "yahoo.com"}

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// Register validates the input, hashes the password and creates the user.
// Duplicate emails are rejected with ErrEmailTaken.
func (s *Service) Register(ctx context.Context, name, email, password string) (User, error) {
	errs := FieldErrors{}

	if strings.TrimSpace(name) == "" {
		errs.Add("name", "Name is required.")
	}

	if strings.TrimSpace(email) == "" {
		errs.Add("email", "Email is required.")
	} else if !domainAllowed(email) {
		errs.Add("email", "Only @gmail.com or @yahoo.com emails are allowed.")
	}

	if strings.TrimSpace(password) == "" {
		errs.Add("password", "Password is required.")
	}

	if len(errs) > 0 {
		return User{}, &ValidationError{Fields: errs}
	}

	_, err := s.repo.GetUserByEmail(ctx, email)

	if err == nil {
		return User{}, ErrEmailTaken
	}

	if !errors.Is(err, ErrUserNotFound) {
		return User{}, fmt.Errorf("failed to check for existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)

	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.InsertUser(ctx, User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login checks the credentials. Unknown email and wrong password both map to
// ErrInvalidCredentials so the response does not reveal which one failed.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	errs := FieldErrors{}

	if strings.TrimSpace(email) == "" {
		errs.Add("email", "Email is required.")
	}
	if strings.TrimSpace(password) == "" {
		errs.Add("password", "Password is required.")
	}

	if len(errs) > 0 {
		return User{}, &ValidationError{Fields: errs}
	}

	u, err := s.repo.GetUserByEmail(ctx, email)

	if errors.Is(err, ErrUserNotFound) {
		return User{}, ErrInvalidCredentials
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func domainAllowed(email string) bool {
	_, domain, found := strings.Cut(email, "@")

	if !found {
		return false
	}

	domain = strings.ToLower(domain)

	for _, allowed := range allowedEmailDomains {
		if domain == allowed {
			return true
		}
	}

	return false
}
