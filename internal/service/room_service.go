package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Shandeepsugumar/quize-game-platform/internal/config"
	"github.com/Shandeepsugumar/quize-game-platform/internal/model"
	"github.com/Shandeepsugumar/quize-game-platform/internal/util"

	"gorm.io/gorm"
)

type RoomService struct {
	Rooms   RoomStore
	Quizzes QuizStore
	Cfg     *config.Config
}

func NewRoomService(rooms RoomStore, quizzes QuizStore, cfg *config.Config) *RoomService {
	return &RoomService{
		Rooms:   rooms,
		Quizzes: quizzes,
		Cfg:     cfg,
	}
}

// CreateRoom generates a unique code and seeds the roster with the host
// as the first player.
func (s *RoomService) CreateRoom(hostID uint, name string, quizID uint, maxPlayers int) (*model.Room, error) {
	if _, err := s.Quizzes.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	if maxPlayers == 0 {
		maxPlayers = s.Cfg.Game.DefaultMaxPlayers
	}
	if maxPlayers < model.MinPlayers || maxPlayers > model.MaxPlayers {
		return nil, fmt.Errorf("maxPlayers must be between %d and %d", model.MinPlayers, model.MaxPlayers)
	}

	code, err := GenerateRoomCode(s.Rooms.CodeExists)
	if err != nil {
		return nil, err
	}

	room := &model.Room{
		Code:       code,
		Name:       name,
		QuizID:     quizID,
		HostID:     hostID,
		MaxPlayers: maxPlayers,
		Status:     model.RoomWaiting,
		Players: []model.RoomPlayer{
			{UserID: hostID, JoinedAt: time.Now()},
		},
	}
	if err := s.Rooms.Create(room); err != nil {
		return nil, err
	}

	return s.Rooms.FindByCode(code)
}

// JoinRoom adds the user to a waiting room. Re-joining a room the user
// is already in is a no-op success.
func (s *RoomService) JoinRoom(userID uint, code string) (*model.Room, error) {
	room, err := s.Rooms.FindByCode(code)
	if err != nil {
		return nil, err
	}

	if room.PlayerByUserID(userID) != nil {
		return room, nil
	}

	if room.Status != model.RoomWaiting {
		return nil, util.ErrRoomNotWaiting
	}

	count, err := s.Rooms.CountPlayers(room.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(room.MaxPlayers) {
		return nil, util.ErrRoomFull
	}

	if err := s.Rooms.AddPlayer(&model.RoomPlayer{
		RoomID:   room.ID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	return s.Rooms.FindByCode(code)
}

func (s *RoomService) GetRoom(code string) (*model.Room, error) {
	return s.Rooms.FindByCode(code)
}

// TogglePowerUps is host-only and allowed only before the game starts.
func (s *RoomService) TogglePowerUps(code string, userID uint, enabled bool) (*model.Room, error) {
	room, err := s.Rooms.FindByCode(code)
	if err != nil {
		return nil, err
	}

	if room.HostID != userID {
		return nil, util.ErrNotHost
	}
	if room.Status != model.RoomWaiting {
		return nil, util.ErrGameAlreadyStarted
	}

	if err := s.Rooms.SetPowerUps(room.ID, enabled); err != nil {
		return nil, err
	}
	return s.Rooms.FindByCode(code)
}

func (s *RoomService) StartGame(code string, userID uint) (*model.Room, error) {
	room, err := s.Rooms.FindByCode(code)
	if err != nil {
		return nil, err
	}

	if room.HostID != userID {
		return nil, util.ErrNotHost
	}
	if len(room.Players) < 1 {
		return nil, util.ErrNotEnoughPlayers
	}

	started, err := s.Rooms.StartGame(room.ID)
	if err != nil {
		return nil, err
	}
	if !started {
		return nil, util.ErrRoomNotWaiting
	}

	return s.Rooms.FindByCode(code)
}

func (s *RoomService) ListActiveRooms() ([]model.Room, error) {
	return s.Rooms.ListWaiting(s.Cfg.Game.ActiveRoomsLimit)
}
