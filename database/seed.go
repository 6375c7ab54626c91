package database

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-blog/backend/models"
)

// Seed makes sure the default roles exist and, when adminPassword is
// non-empty, that an "admin" user exists. There is no registration
// flow, so the seeded admin is the one identity able to mutate
// content. Idempotent across restarts.
func (d Database) Seed(adminUsername, adminPassword string) error {
	adminRole, err := d.userRepo.FindRoleByName("admin")
	if err != nil {
		return err
	}
	if adminRole == nil {
		adminRole = &models.Role{Name: "admin"}
		if err := d.userRepo.AddRole(adminRole); err != nil {
			return err
		}
	}

	guestRole, err := d.userRepo.FindRoleByName("guest")
	if err != nil {
		return err
	}
	if guestRole == nil {
		if err := d.userRepo.AddRole(&models.Role{Name: "guest"}); err != nil {
			return err
		}
	}

	if adminUsername == "" || adminPassword == "" {
		return nil
	}

	existing, err := d.userRepo.FindByUsername(adminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return d.userRepo.Add(&models.User{
		Username:     adminUsername,
		PasswordHash: string(hash),
		RoleID:       adminRole.ID,
	})
}
