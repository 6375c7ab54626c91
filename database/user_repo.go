package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByUsername returns a user with their role preloaded, or nil when
// no such user exists.
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Omit("Role").Create(user).Error
}

// FindRoleByName returns a role by its unique name, or nil when absent.
func (r *UserRepo) FindRoleByName(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// AddRole inserts a new role into the database
func (r *UserRepo) AddRole(role *models.Role) error {
	return r.db.Create(role).Error
}
