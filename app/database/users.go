package database

import (
	"strings"
	"time"

	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/storage"

	"github.com/google/uuid"
)

// storedUser is the persistence form of a user. The API-facing model hides
// the password hash from JSON with a "-" tag; the stored form must keep it
// or logins break after the first save.
type storedUser struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

func toStored(user *models.User) *storedUser {
	return &storedUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func fromStored(stored *storedUser) *models.User {
	return &models.User{
		ID:        stored.ID,
		Name:      stored.Name,
		Email:     stored.Email,
		Password:  stored.Password,
		Role:      stored.Role,
		CreatedAt: stored.CreatedAt,
	}
}

func loadUsers(s storage.Store) ([]*models.User, error) {
	stored, err := storage.LoadCollection[*storedUser](s, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	users := make([]*models.User, 0, len(stored))
	for _, su := range stored {
		users = append(users, fromStored(su))
	}
	return users, nil
}

func saveUsers(s storage.Store, users []*models.User) error {
	stored := make([]*storedUser, 0, len(users))
	for _, user := range users {
		stored = append(stored, toStored(user))
	}
	return storage.SaveCollection(s, storage.KeyUsers, stored)
}

func GetAllUsers(s storage.Store) ([]*models.User, error) {
	return loadUsers(s)
}

// GetUserByEmail returns the first user matching the email. Email is a
// secondary lookup key and is matched case-insensitively; it is not
// guaranteed unique, so first match wins.
func GetUserByEmail(s storage.Store, email string) (*models.User, error) {
	users, err := loadUsers(s)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, ErrNotFound
}

func GetUserByID(s storage.Store, userID string) (*models.User, error) {
	users, err := loadUsers(s)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser stores a new user. Password must already be hashed by the
// caller. The id and creation timestamp are assigned here.
func CreateUser(s storage.Store, user *models.User) error {
	users, err := loadUsers(s)
	if err != nil {
		return err
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	users = append(users, user)
	return saveUsers(s, users)
}

// UpdateUser replaces the stored record matching user.ID. An empty password
// on the update keeps the stored hash.
func UpdateUser(s storage.Store, user *models.User) error {
	users, err := loadUsers(s)
	if err != nil {
		return err
	}
	for i, existing := range users {
		if existing.ID == user.ID {
			user.CreatedAt = existing.CreatedAt
			if user.Password == "" {
				user.Password = existing.Password
			}
			users[i] = user
			return saveUsers(s, users)
		}
	}
	return ErrNotFound
}

func UpdateUserPassword(s storage.Store, userID, hashedPassword string) error {
	users, err := loadUsers(s)
	if err != nil {
		return err
	}
	for _, user := range users {
		if user.ID == userID {
			user.Password = hashedPassword
			return saveUsers(s, users)
		}
	}
	return ErrNotFound
}

// DeleteUser removes a user account. Reports the user created are repaired
// first so a failure leaves the account present rather than half-deleted;
// the reports themselves are never cascade-deleted.
func DeleteUser(s storage.Store, userID string) error {
	users, err := loadUsers(s)
	if err != nil {
		return err
	}
	index := -1
	for i, user := range users {
		if user.ID == userID {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrNotFound
	}

	if err := RepairReportsForDeletedUser(s, userID); err != nil {
		return err
	}

	users = append(users[:index], users[index+1:]...)
	return saveUsers(s, users)
}
