package controller

import (
	"errors"

	"github.com/Shandeepsugumar/quize-game-platform/internal/service"
	"github.com/Shandeepsugumar/quize-game-platform/internal/util"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomService *service.RoomService
}

func NewRoomController(roomService *service.RoomService) *RoomController {
	return &RoomController{RoomService: roomService}
}

// swagger:model CreateRoomRequest
type CreateRoomRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	QuizID     uint   `json:"quizId" binding:"required"`
	MaxPlayers int    `json:"maxPlayers" binding:"omitempty,min=2,max=50"`
}

// CreateRoom godoc
// @Summary Create a game room
// @Description Generates a unique 6-character room code; the host joins automatically
// @Tags room
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateRoomRequest true "Room settings"
// @Success 201 {object} util.Response{data=model.Room}
// @Failure 404 {object} util.Response "Quiz not found"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	room, err := c.RoomService.CreateRoom(claims.UserID, req.Name, req.QuizID, req.MaxPlayers)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"room": room})
}

// swagger:model JoinRoomRequest
type JoinRoomRequest struct {
	RoomCode string `json:"roomCode" binding:"required,len=6"`
}

// JoinRoom godoc
// @Summary Join a waiting room by code
// @Description Re-joining an already-joined room succeeds without duplication
// @Tags room
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body JoinRoomRequest true "Room code"
// @Success 200 {object} util.Response{data=model.Room}
// @Failure 400 {object} util.Response "Room full or already started"
// @Failure 404 {object} util.Response
// @Router /rooms/join [post]
func (c *RoomController) JoinRoom(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req JoinRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	room, err := c.RoomService.JoinRoom(claims.UserID, req.RoomCode)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrRoomNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrRoomNotWaiting), errors.Is(err, util.ErrRoomFull):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"room": room})
}

// GetRoom godoc
// @Summary Get a room by code
// @Tags room
// @Produce json
// @Security ApiKeyAuth
// @Param roomCode path string true "Room code"
// @Success 200 {object} util.Response{data=model.Room}
// @Failure 404 {object} util.Response
// @Router /rooms/{roomCode} [get]
func (c *RoomController) GetRoom(ctx *gin.Context) {
	room, err := c.RoomService.GetRoom(ctx.Param("roomCode"))
	if err != nil {
		if errors.Is(err, util.ErrRoomNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"room": room})
}

// swagger:model TogglePowerUpsRequest
type TogglePowerUpsRequest struct {
	PowerUpsEnabled *bool `json:"powerUpsEnabled" binding:"required"`
}

// TogglePowerUps godoc
// @Summary Enable or disable power-ups (host only, before start)
// @Tags room
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param roomCode path string true "Room code"
// @Param body body TogglePowerUpsRequest true "Flag"
// @Success 200 {object} util.Response{data=model.Room}
// @Failure 403 {object} util.Response
// @Router /rooms/{roomCode}/toggle-powerups [post]
func (c *RoomController) TogglePowerUps(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req TogglePowerUpsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	room, err := c.RoomService.TogglePowerUps(ctx.Param("roomCode"), claims.UserID, *req.PowerUpsEnabled)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrRoomNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrNotHost):
			util.Forbidden(ctx, err.Error())
		case errors.Is(err, util.ErrGameAlreadyStarted):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"room": room})
}

// StartGame godoc
// @Summary Start the game (host only)
// @Tags room
// @Produce json
// @Security ApiKeyAuth
// @Param roomCode path string true "Room code"
// @Success 200 {object} util.Response{data=model.Room}
// @Failure 400 {object} util.Response "Room not in waiting state"
// @Failure 403 {object} util.Response
// @Router /rooms/{roomCode}/start [post]
func (c *RoomController) StartGame(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	room, err := c.RoomService.StartGame(ctx.Param("roomCode"), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrRoomNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrNotHost):
			util.Forbidden(ctx, err.Error())
		case errors.Is(err, util.ErrNotEnoughPlayers), errors.Is(err, util.ErrRoomNotWaiting):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"room": room})
}

// ListActiveRooms godoc
// @Summary List rooms waiting for players
// @Tags room
// @Produce json
// @Success 200 {object} util.Response{data=object}
// @Router /rooms/active/all [get]
func (c *RoomController) ListActiveRooms(ctx *gin.Context) {
	rooms, err := c.RoomService.ListActiveRooms()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"rooms": rooms})
}
