package repository

import (
	"github.com/Shandeepsugumar/quize-game-platform/internal/model"

	"gorm.io/gorm"
)

type GameResultRepository struct {
	DB *gorm.DB
}

func NewGameResultRepository(db *gorm.DB) *GameResultRepository {
	return &GameResultRepository{DB: db}
}

func (r *GameResultRepository) Create(result *model.GameResult) error {
	return r.DB.Create(result).Error
}

func (r *GameResultRepository) ListRecent(limit int) ([]model.GameResult, error) {
	var results []model.GameResult
	err := r.DB.
		Preload("Quiz").
		Preload("Winner").
		Preload("Rankings", func(db *gorm.DB) *gorm.DB {
			return db.Order("game_rankings.rank ASC")
		}).
		Preload("Rankings.User").
		Order("played_at DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

// ListByUser returns results in which the user appears in the rankings,
// newest first.
func (r *GameResultRepository) ListByUser(userID uint, limit int) ([]model.GameResult, error) {
	var results []model.GameResult
	err := r.DB.
		Preload("Quiz").
		Preload("Rankings", func(db *gorm.DB) *gorm.DB {
			return db.Order("game_rankings.rank ASC")
		}).
		Joins("JOIN game_rankings ON game_rankings.game_result_id = game_results.id").
		Where("game_rankings.user_id = ?", userID).
		Order("game_results.played_at DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}
