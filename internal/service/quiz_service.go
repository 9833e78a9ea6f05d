package service

import (
	"errors"
	"fmt"

	"github.com/Shandeepsugumar/quize-game-platform/internal/model"
	"github.com/Shandeepsugumar/quize-game-platform/internal/repository"
	"github.com/Shandeepsugumar/quize-game-platform/internal/util"

	"gorm.io/gorm"
)

const optionsPerQuestion = 4

type QuizService struct {
	Quizzes QuizStore
}

func NewQuizService(quizzes QuizStore) *QuizService {
	return &QuizService{Quizzes: quizzes}
}

type QuestionInput struct {
	Text          string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer *int     `json:"correctAnswer" binding:"required"`
	Points        int      `json:"points"`
	TimeLimit     int      `json:"timeLimit"`
}

type CreateQuizInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
	Difficulty  string          `json:"difficulty" binding:"required"`
	IsPublic    *bool           `json:"isPublic"`
	Questions   []QuestionInput `json:"questions" binding:"required,min=1"`
}

func (s *QuizService) CreateQuiz(authorID uint, in CreateQuizInput) (*model.Quiz, error) {
	category := model.QuizCategory(in.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", in.Category)
	}
	difficulty := model.QuizDifficulty(in.Difficulty)
	if !difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", in.Difficulty)
	}

	questions := make([]model.Question, 0, len(in.Questions))
	for i, q := range in.Questions {
		if len(q.Options) != optionsPerQuestion {
			return nil, fmt.Errorf("question %d must have exactly %d options", i+1, optionsPerQuestion)
		}
		if q.CorrectAnswer == nil || *q.CorrectAnswer < 0 || *q.CorrectAnswer >= optionsPerQuestion {
			return nil, fmt.Errorf("question %d correct answer must be between 0 and %d", i+1, optionsPerQuestion-1)
		}

		points := q.Points
		if points <= 0 {
			points = 10
		}
		timeLimit := q.TimeLimit
		if timeLimit <= 0 {
			timeLimit = 30
		}

		questions = append(questions, model.Question{
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: *q.CorrectAnswer,
			Points:        points,
			TimeLimit:     timeLimit,
			Order:         i,
		})
	}

	quiz := &model.Quiz{
		Title:       in.Title,
		Description: in.Description,
		Category:    category,
		Difficulty:  difficulty,
		Questions:   questions,
		CreatedByID: authorID,
		IsPublic:    true,
	}
	if in.IsPublic != nil {
		quiz.IsPublic = *in.IsPublic
	}

	if err := s.Quizzes.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) ListQuizzes(filter repository.QuizFilter) ([]model.Quiz, error) {
	return s.Quizzes.List(filter)
}

func (s *QuizService) GetQuiz(id uint) (*model.Quiz, error) {
	quiz, err := s.Quizzes.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

func (s *QuizService) ListMyQuizzes(authorID uint) ([]model.Quiz, error) {
	return s.Quizzes.ListByAuthor(authorID)
}

func (s *QuizService) DeleteQuiz(id, requesterID uint) error {
	quiz, err := s.Quizzes.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuizNotFound
	}
	if err != nil {
		return err
	}

	if quiz.CreatedByID != requesterID {
		return util.ErrNotQuizAuthor
	}

	return s.Quizzes.Delete(id)
}
