package controller

import (
	"errors"
	"strconv"

	"github.com/Shandeepsugumar/quize-game-platform/internal/model"
	"github.com/Shandeepsugumar/quize-game-platform/internal/repository"
	"github.com/Shandeepsugumar/quize-game-platform/internal/service"
	"github.com/Shandeepsugumar/quize-game-platform/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Each question needs exactly 4 options and a correct index in [0,3]
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateQuizInput true "Quiz definition"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateQuizInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.CreateQuiz(claims.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, gin.H{"quiz": quiz})
}

// ListQuizzes godoc
// @Summary List public quizzes
// @Tags quiz
// @Produce json
// @Param category query string false "Category filter"
// @Param difficulty query string false "Difficulty filter"
// @Param search query string false "Title/description text search"
// @Success 200 {object} util.Response{data=object}
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	filter := repository.QuizFilter{
		Search: ctx.Query("search"),
	}
	if category := ctx.Query("category"); category != "" && category != "All" {
		filter.Category = model.QuizCategory(category)
	}
	if difficulty := ctx.Query("difficulty"); difficulty != "" && difficulty != "All" {
		filter.Difficulty = model.QuizDifficulty(difficulty)
	}

	quizzes, err := c.QuizService.ListQuizzes(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"quizzes": quizzes})
}

// GetQuiz godoc
// @Summary Get a quiz by id
// @Tags quiz
// @Produce json
// @Param id path int true "Quiz id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	quiz, err := c.QuizService.GetQuiz(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"quiz": quiz})
}

// ListMyQuizzes godoc
// @Summary List quizzes authored by the current user
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /quizzes/my/list [get]
func (c *QuizController) ListMyQuizzes(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizzes, err := c.QuizService.ListMyQuizzes(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"quizzes": quizzes})
}

// DeleteQuiz godoc
// @Summary Delete a quiz (author only)
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	if err := c.QuizService.DeleteQuiz(uint(id), claims.UserID); err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrNotQuizAuthor):
			util.Forbidden(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Quiz deleted successfully"})
}
