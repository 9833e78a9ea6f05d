package service

import (
	"context"

	"github.com/Shandeepsugumar/quize-game-platform/internal/model"
	"github.com/Shandeepsugumar/quize-game-platform/internal/repository"
)

// Store interfaces the services depend on. The gorm repositories in
// internal/repository are the production implementations; tests supply
// in-memory ones.

type UserStore interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByIDs(ids []uint) ([]model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByGoogleID(googleID string) (*model.User, error)
	Update(user *model.User) error
	IncrementStats(userID uint, score int, won bool) error
	FindTopByTotalScore(limit int) ([]model.User, error)
	CountWithScoreAbove(score int) (int64, error)
}

type QuizStore interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	List(filter repository.QuizFilter) ([]model.Quiz, error)
	ListByAuthor(authorID uint) ([]model.Quiz, error)
	Delete(id uint) error
	IncrementTimesPlayed(id uint) error
}

type RoomStore interface {
	Create(room *model.Room) error
	FindByCode(code string) (*model.Room, error)
	CodeExists(code string) (bool, error)
	ListWaiting(limit int) ([]model.Room, error)
	AddPlayer(player *model.RoomPlayer) error
	CountPlayers(roomID uint) (int64, error)
	StartGame(roomID uint) (bool, error)
	CompleteGame(roomID uint) (bool, error)
	SetPowerUps(roomID uint, enabled bool) error
	HasAnswer(playerID uint, questionIndex int) (bool, error)
	AddAnswer(answer *model.PlayerAnswer) error
	AddScore(playerID uint, points int) error
}

type GameResultStore interface {
	Create(result *model.GameResult) error
	ListRecent(limit int) ([]model.GameResult, error)
	ListByUser(userID uint, limit int) ([]model.GameResult, error)
}

// ScoreCache is the Redis-backed leaderboard mirror. It is best-effort:
// callers fall back to the user store when it is empty or failing.
type ScoreCache interface {
	UpdateScore(ctx context.Context, userID uint, totalScore int) error
	TopUserIDs(ctx context.Context, limit int) ([]uint, bool, error)
	Rebuild(ctx context.Context, users []model.User) error
}
