package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/Shandeepsugumar/quize-game-platform/internal/model"
	"github.com/Shandeepsugumar/quize-game-platform/internal/util"

	"gorm.io/gorm"
)

type RoomRepository struct {
	DB *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{DB: db}
}

func (r *RoomRepository) Create(room *model.Room) error {
	return r.DB.Create(room).Error
}

func (r *RoomRepository) FindByCode(code string) (*model.Room, error) {
	var room model.Room
	err := r.DB.
		Preload("Quiz.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.`order` ASC")
		}).
		Preload("Quiz.CreatedBy").
		Preload("Host").
		Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("room_players.joined_at ASC, room_players.id ASC")
		}).
		Preload("Players.User").
		Preload("Players.Answers").
		Where("code = ?", strings.ToUpper(code)).
		First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Room{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *RoomRepository) ListWaiting(limit int) ([]model.Room, error) {
	var rooms []model.Room
	err := r.DB.
		Preload("Quiz").
		Preload("Host").
		Preload("Players").
		Where("status = ?", model.RoomWaiting).
		Order("created_at DESC").
		Limit(limit).
		Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) AddPlayer(player *model.RoomPlayer) error {
	return r.DB.Create(player).Error
}

func (r *RoomRepository) CountPlayers(roomID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.RoomPlayer{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}

// StartGame flips waiting -> in-progress. The conditional update keeps
// the transition monotonic under concurrent requests; false means the
// room was not in the waiting state.
func (r *RoomRepository) StartGame(roomID uint) (bool, error) {
	res := r.DB.Model(&model.Room{}).
		Where("id = ? AND status = ?", roomID, model.RoomWaiting).
		Updates(map[string]interface{}{
			"status":           model.RoomInProgress,
			"started_at":       time.Now(),
			"current_question": 0,
		})
	return res.RowsAffected > 0, res.Error
}

// CompleteGame flips in-progress -> completed; false means the room was
// not in progress.
func (r *RoomRepository) CompleteGame(roomID uint) (bool, error) {
	res := r.DB.Model(&model.Room{}).
		Where("id = ? AND status = ?", roomID, model.RoomInProgress).
		Updates(map[string]interface{}{
			"status":       model.RoomCompleted,
			"completed_at": time.Now(),
		})
	return res.RowsAffected > 0, res.Error
}

func (r *RoomRepository) SetPowerUps(roomID uint, enabled bool) error {
	return r.DB.Model(&model.Room{}).
		Where("id = ?", roomID).
		Update("power_ups_enabled", enabled).
		Error
}

func (r *RoomRepository) HasAnswer(playerID uint, questionIndex int) (bool, error) {
	var count int64
	err := r.DB.Model(&model.PlayerAnswer{}).
		Where("room_player_id = ? AND question_index = ?", playerID, questionIndex).
		Count(&count).Error
	return count > 0, err
}

// AddAnswer inserts the answer row. The unique index on
// (room_player_id, question_index) turns a racing duplicate into
// ErrAlreadyAnswered instead of a lost update.
func (r *RoomRepository) AddAnswer(answer *model.PlayerAnswer) error {
	err := r.DB.Create(answer).Error
	if err != nil && strings.Contains(err.Error(), "Duplicate entry") {
		return util.ErrAlreadyAnswered
	}
	return err
}

func (r *RoomRepository) AddScore(playerID uint, points int) error {
	return r.DB.Model(&model.RoomPlayer{}).
		Where("id = ?", playerID).
		Update("score", gorm.Expr("score + ?", points)).
		Error
}
