package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameResult is the immutable snapshot written exactly once when a room
// completes.
// swagger:model GameResult
type GameResult struct {
	BaseModel
	ShareToken string        `gorm:"size:36;uniqueIndex" json:"shareToken"`
	RoomID     uint          `gorm:"uniqueIndex;not null" json:"roomId"`
	Room       *Room         `json:"room,omitempty"`
	QuizID     uint          `gorm:"index;not null" json:"quizId"`
	Quiz       *Quiz         `json:"quiz,omitempty"`
	Rankings   []GameRanking `gorm:"constraint:OnDelete:CASCADE" json:"rankings"`
	// Nil when the roster was empty.
	WinnerID *uint     `json:"winnerId,omitempty"`
	Winner   *User     `json:"winner,omitempty"`
	PlayedAt time.Time `gorm:"index" json:"playedAt"`
}

func (GameResult) TableName() string {
	return "game_results"
}

func (g *GameResult) BeforeCreate(tx *gorm.DB) error {
	if g.ShareToken == "" {
		g.ShareToken = uuid.New().String()
	}
	return nil
}

// swagger:model GameRanking
type GameRanking struct {
	BaseModel
	GameResultID   uint    `gorm:"index;not null" json:"-"`
	UserID         uint    `gorm:"index;not null" json:"userId"`
	User           *User   `json:"user,omitempty"`
	Score          int     `gorm:"not null" json:"score"`
	CorrectAnswers int     `gorm:"not null" json:"correctAnswers"`
	TotalQuestions int     `gorm:"not null" json:"totalQuestions"`
	Accuracy       float64 `gorm:"not null" json:"accuracy"`
	Rank           int     `gorm:"not null" json:"rank"`
}

func (GameRanking) TableName() string {
	return "game_rankings"
}
