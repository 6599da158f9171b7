package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Email     string
	Avatar    string
	Password  string
}

func NewUser(name, email, avatar, password string) *User {
	now := time.Now().UTC()
	return &User{
		Id:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Avatar:    avatar,
		Password:  password,
	}
}

// NormalizeEmail is the canonical form used for lookups and uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) validate() error {
	if u.Id == uuid.Nil {
		return errors.New("id must not be empty")
	}
	if u.Name == "" {
		return errors.New("name must not be empty")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// OwnerID makes a user the owner of its own account.
func (u *User) OwnerID() uuid.UUID {
	return u.Id
}
