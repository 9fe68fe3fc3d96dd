package user

import (
	"fmt"
	"regexp"
	"time"

	"revu/internal/shared/biztime"
)

const maxUsernameLength = 150

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// User represents a registered account. Only signup creates users; the core
// never mutates them afterwards.
type User struct {
	id           uint
	username     string
	passwordHash string
	active       bool
	staff        bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new active, non-staff user.
func NewUser(username, passwordHash string) (*User, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		active:       true,
		staff:        false,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(id uint, username, passwordHash string, active, staff bool, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		active:       active,
		staff:        staff,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ValidateUsername checks the signup username constraints.
func ValidateUsername(username string) error {
	if len(username) == 0 {
		return fmt.Errorf("username is required")
	}
	if len(username) > maxUsernameLength {
		return fmt.Errorf("username exceeds maximum length of %d characters", maxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username may only contain letters, digits and _.-")
	}
	return nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) IsStaff() bool {
	return u.staff
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
