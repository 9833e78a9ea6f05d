package repository

import (
	"github.com/Shandeepsugumar/quize-game-platform/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByIDs(ids []uint) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByGoogleID(googleID string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("google_id = ?", googleID).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// IncrementStats bumps the cumulative counters after a completed game.
func (r *UserRepository) IncrementStats(userID uint, score int, won bool) error {
	updates := map[string]interface{}{
		"total_score":  gorm.Expr("total_score + ?", score),
		"games_played": gorm.Expr("games_played + 1"),
	}
	if won {
		updates["games_won"] = gorm.Expr("games_won + 1")
	}
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(updates).
		Error
}

func (r *UserRepository) FindTopByTotalScore(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("total_score DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *UserRepository) CountWithScoreAbove(score int) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("total_score > ?", score).Count(&count).Error
	return count, err
}
