package service

import (
	"context"
	"errors"
	"math"

	"github.com/Shandeepsugumar/quize-game-platform/internal/model"
	"github.com/Shandeepsugumar/quize-game-platform/internal/util"

	"gorm.io/gorm"
)

type LeaderboardService struct {
	Users   UserStore
	Results GameResultStore
	Cache   ScoreCache
}

func NewLeaderboardService(users UserStore, results GameResultStore, cache ScoreCache) *LeaderboardService {
	return &LeaderboardService{
		Users:   users,
		Results: results,
		Cache:   cache,
	}
}

type LeaderboardRow struct {
	Rank        int         `json:"rank"`
	User        *model.User `json:"user"`
	TotalScore  int         `json:"totalScore"`
	GamesPlayed int         `json:"gamesPlayed"`
	GamesWon    int         `json:"gamesWon"`
	WinRate     float64     `json:"winRate"`
}

func roundRate(rate float64) float64 {
	return math.Round(rate*10) / 10
}

func rowForUser(rank int, user *model.User) LeaderboardRow {
	return LeaderboardRow{
		Rank:        rank,
		User:        user,
		TotalScore:  user.TotalScore,
		GamesPlayed: user.GamesPlayed,
		GamesWon:    user.GamesWon,
		WinRate:     roundRate(user.WinRate()),
	}
}

// Global returns the top-N users by cumulative score. The Redis sorted
// set answers when warm; otherwise the database is read and the set
// rebuilt.
func (s *LeaderboardService) Global(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	ids, warm, err := s.Cache.TopUserIDs(ctx, limit)
	if err == nil && warm {
		users, err := s.Users.FindByIDs(ids)
		if err != nil {
			return nil, err
		}

		byID := make(map[uint]*model.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		rows := make([]LeaderboardRow, 0, len(ids))
		for _, id := range ids {
			user, ok := byID[id]
			if !ok {
				continue
			}
			rows = append(rows, rowForUser(len(rows)+1, user))
		}
		return rows, nil
	}

	users, err := s.Users.FindTopByTotalScore(limit)
	if err != nil {
		return nil, err
	}
	_ = s.Cache.Rebuild(ctx, users)

	rows := make([]LeaderboardRow, 0, len(users))
	for i := range users {
		rows = append(rows, rowForUser(i+1, &users[i]))
	}
	return rows, nil
}

func (s *LeaderboardService) RecentGames(limit int) ([]model.GameResult, error) {
	return s.Results.ListRecent(limit)
}

type UserStats struct {
	User        *model.User        `json:"user"`
	Rank        int64              `json:"rank"`
	TotalScore  int                `json:"totalScore"`
	GamesPlayed int                `json:"gamesPlayed"`
	GamesWon    int                `json:"gamesWon"`
	WinRate     float64            `json:"winRate"`
	RecentGames []model.GameResult `json:"recentGames"`
}

// UserStats computes a user's global rank as 1 plus the number of users
// with a strictly greater cumulative score.
func (s *LeaderboardService) UserStats(userID uint) (*UserStats, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	higher, err := s.Users.CountWithScoreAbove(user.TotalScore)
	if err != nil {
		return nil, err
	}

	recent, err := s.Results.ListByUser(userID, 5)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		User:        user,
		Rank:        higher + 1,
		TotalScore:  user.TotalScore,
		GamesPlayed: user.GamesPlayed,
		GamesWon:    user.GamesWon,
		WinRate:     roundRate(user.WinRate()),
		RecentGames: recent,
	}, nil
}
