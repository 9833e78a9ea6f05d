package repository

import (
	"github.com/Shandeepsugumar/quize-game-platform/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// QuizFilter narrows the public quiz listing. Zero values mean "all".
type QuizFilter struct {
	Category   model.QuizCategory
	Difficulty model.QuizDifficulty
	Search     string
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.`order` ASC")
		}).
		Preload("CreatedBy").
		First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) List(filter QuizFilter) ([]model.Quiz, error) {
	query := r.DB.Model(&model.Quiz{}).Where("is_public = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var quizzes []model.Quiz
	err := query.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.`order` ASC")
		}).
		Preload("CreatedBy").
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) ListByAuthor(authorID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.`order` ASC")
		}).
		Where("created_by_id = ?", authorID).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Select("Questions").Delete(&model.Quiz{BaseModel: model.BaseModel{ID: id}}).Error
}

func (r *QuizRepository) IncrementTimesPlayed(id uint) error {
	return r.DB.Model(&model.Quiz{}).
		Where("id = ?", id).
		Update("times_played", gorm.Expr("times_played + 1")).
		Error
}
