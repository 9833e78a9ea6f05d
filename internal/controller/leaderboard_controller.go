package controller

import (
	"errors"
	"strconv"

	"github.com/Shandeepsugumar/quize-game-platform/internal/service"
	"github.com/Shandeepsugumar/quize-game-platform/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

func limitQuery(ctx *gin.Context, def, max int) int {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil || limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// Global godoc
// @Summary Global leaderboard by cumulative score
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Row count (default 10, max 100)"
// @Success 200 {object} util.Response{data=object}
// @Router /leaderboard/global [get]
func (c *LeaderboardController) Global(ctx *gin.Context) {
	limit := limitQuery(ctx, 10, 100)

	rows, err := c.LeaderboardService.Global(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"leaderboard": rows})
}

// RecentGames godoc
// @Summary Recently completed games
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Row count (default 10, max 100)"
// @Success 200 {object} util.Response{data=object}
// @Router /leaderboard/recent [get]
func (c *LeaderboardController) RecentGames(ctx *gin.Context) {
	limit := limitQuery(ctx, 10, 100)

	games, err := c.LeaderboardService.RecentGames(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"recentGames": games})
}

// UserStats godoc
// @Summary A user's cumulative stats, global rank and recent games
// @Tags leaderboard
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} util.Response{data=service.UserStats}
// @Failure 404 {object} util.Response
// @Router /leaderboard/user/{userId} [get]
func (c *LeaderboardController) UserStats(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("userId"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	stats, err := c.LeaderboardService.UserStats(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"stats": stats})
}
