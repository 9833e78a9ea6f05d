package controller

import (
	"errors"
	"strconv"

	"github.com/Shandeepsugumar/quize-game-platform/internal/service"
	"github.com/Shandeepsugumar/quize-game-platform/internal/util"
	"github.com/Shandeepsugumar/quize-game-platform/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type GameController struct {
	GameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{GameService: gameService}
}

// swagger:model SubmitAnswerRequest
type SubmitAnswerRequest struct {
	RoomCode      string  `json:"roomCode" binding:"required,len=6"`
	QuestionIndex *int    `json:"questionIndex" binding:"required,min=0"`
	// -1 marks a timeout with no option selected.
	SelectedAnswer *int    `json:"selectedAnswer" binding:"required,min=-1,max=3"`
	TimeSpent      float64 `json:"timeSpent" binding:"min=0"`
}

// SubmitAnswer godoc
// @Summary Submit an answer for one question
// @Description Faster correct answers earn up to a 50% time bonus; one answer per question
// @Tags game
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitAnswerRequest true "Answer"
// @Success 200 {object} util.Response{data=service.AnswerResult}
// @Failure 400 {object} util.Response "Duplicate answer or game not in progress"
// @Failure 404 {object} util.Response
// @Router /game/answer [post]
func (c *GameController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.GameService.SubmitAnswer(claims.UserID, req.RoomCode, *req.QuestionIndex, *req.SelectedAnswer, req.TimeSpent)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrRoomNotFound), errors.Is(err, util.ErrQuestionNotFound),
			errors.Is(err, util.ErrPlayerNotInRoom):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrGameNotInProgress), errors.Is(err, util.ErrAlreadyAnswered):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.AnswersSubmitted.WithLabelValues(strconv.FormatBool(result.IsCorrect)).Inc()
	util.Success(ctx, result)
}

// swagger:model CompleteGameRequest
type CompleteGameRequest struct {
	RoomCode string `json:"roomCode" binding:"required,len=6"`
}

// CompleteGame godoc
// @Summary Finalize a game (host only)
// @Description Persists the result snapshot and updates cumulative player stats
// @Tags game
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CompleteGameRequest true "Room code"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Game not in progress"
// @Failure 403 {object} util.Response
// @Router /game/complete [post]
func (c *GameController) CompleteGame(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CompleteGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rankings, err := c.GameService.CompleteGame(ctx.Request.Context(), claims.UserID, req.RoomCode)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrRoomNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrNotHost):
			util.Forbidden(ctx, err.Error())
		case errors.Is(err, util.ErrGameNotInProgress):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.GamesCompleted.Inc()
	util.Success(ctx, gin.H{"rankings": rankings})
}

// GetResults godoc
// @Summary Get live or final standings for a room
// @Tags game
// @Produce json
// @Security ApiKeyAuth
// @Param roomCode path string true "Room code"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /game/results/{roomCode} [get]
func (c *GameController) GetResults(ctx *gin.Context) {
	room, rankings, err := c.GameService.GetResults(ctx.Param("roomCode"))
	if err != nil {
		if errors.Is(err, util.ErrRoomNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"room": room, "rankings": rankings})
}
