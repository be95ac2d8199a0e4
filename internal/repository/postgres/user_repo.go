package postgres

import (
	"time"

	"gorm.io/gorm"

	"Community_Hub/internal/model"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) UpdatePassword(user *model.User, newPassword string) error {
	return r.DB.Model(user).Update("password", newPassword).Error
}

func (r *UserRepository) UpdateProfile(id uint64, fields map[string]any) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error
}

// UpdatePreferences persists an already-merged preference map.
func (r *UserRepository) UpdatePreferences(id uint64, prefs model.Preferences) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("preferences", prefs).Error
}

func (r *UserRepository) TouchLastLogin(id uint64) error {
	now := time.Now()
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("last_login", now).Error
}
