package model

import "time"

type RoomStatus string

const (
	RoomWaiting    RoomStatus = "waiting"
	RoomInProgress RoomStatus = "in-progress"
	RoomCompleted  RoomStatus = "completed"
)

const (
	RoomCodeLength = 6
	MinPlayers     = 2
	MaxPlayers     = 50
)

// Room is a single live play-session of one quiz. Players and answers
// are separate tables keyed by room id rather than an embedded array,
// so concurrent answer submissions touch disjoint rows.
// swagger:model Room
type Room struct {
	BaseModel
	Code            string       `gorm:"size:6;uniqueIndex;not null" json:"roomCode"`
	Name            string       `gorm:"size:100;not null" json:"name"`
	QuizID          uint         `gorm:"index;not null" json:"quizId"`
	Quiz            *Quiz        `json:"quiz,omitempty"`
	HostID          uint         `gorm:"index;not null" json:"hostId"`
	Host            *User        `json:"host,omitempty"`
	Players         []RoomPlayer `json:"players"`
	MaxPlayers      int          `gorm:"default:10" json:"maxPlayers"`
	Status          RoomStatus   `gorm:"size:20;default:'waiting';index" json:"status"`
	CurrentQuestion int          `gorm:"default:0" json:"currentQuestion"`
	PowerUpsEnabled bool         `gorm:"default:false" json:"powerUpsEnabled"`
	StartedAt       *time.Time   `json:"startedAt,omitempty"`
	CompletedAt     *time.Time   `json:"completedAt,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}

// PlayerByUserID returns the roster entry for a user, nil when the user
// has not joined the room.
func (r *Room) PlayerByUserID(userID uint) *RoomPlayer {
	for i := range r.Players {
		if r.Players[i].UserID == userID {
			return &r.Players[i]
		}
	}
	return nil
}

// swagger:model RoomPlayer
type RoomPlayer struct {
	BaseModel
	RoomID   uint           `gorm:"not null;uniqueIndex:idx_room_user" json:"roomId"`
	UserID   uint           `gorm:"not null;uniqueIndex:idx_room_user" json:"userId"`
	User     *User          `json:"user,omitempty"`
	Score    int            `gorm:"default:0" json:"score"`
	Answers  []PlayerAnswer `json:"answers"`
	JoinedAt time.Time      `json:"joinedAt"`
}

func (RoomPlayer) TableName() string {
	return "room_players"
}

// TimeoutAnswer marks a submission where the countdown elapsed with no
// option selected.
const TimeoutAnswer = -1

// swagger:model PlayerAnswer
type PlayerAnswer struct {
	BaseModel
	// The unique index rejects a second submission for the same
	// question at the storage layer.
	RoomPlayerID   uint    `gorm:"not null;uniqueIndex:idx_player_question" json:"-"`
	QuestionIndex  int     `gorm:"not null;uniqueIndex:idx_player_question" json:"questionIndex"`
	SelectedAnswer int     `gorm:"not null" json:"selectedAnswer"`
	IsCorrect      bool    `gorm:"not null" json:"isCorrect"`
	Points         int     `gorm:"not null" json:"points"`
	TimeSpent      float64 `gorm:"not null" json:"timeSpent"` // seconds, client-reported
}

func (PlayerAnswer) TableName() string {
	return "player_answers"
}
