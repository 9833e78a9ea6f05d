package repository

import (
	"context"
	"strconv"

	"github.com/Shandeepsugumar/quize-game-platform/internal/model"

	"github.com/go-redis/redis/v8"
)

const globalLeaderboardKey = "leaderboard:global"

// LeaderboardCache mirrors the global leaderboard in a Redis sorted set
// so top-N reads skip MySQL. It is write-through on game completion and
// rebuilt from the database when empty.
type LeaderboardCache struct {
	Redis *redis.Client
}

func NewLeaderboardCache(rdb *redis.Client) *LeaderboardCache {
	return &LeaderboardCache{Redis: rdb}
}

func (c *LeaderboardCache) UpdateScore(ctx context.Context, userID uint, totalScore int) error {
	return c.Redis.ZAdd(ctx, globalLeaderboardKey, &redis.Z{
		Score:  float64(totalScore),
		Member: strconv.FormatUint(uint64(userID), 10),
	}).Err()
}

// TopUserIDs returns the highest-scoring user ids in rank order. The
// second return is false when the set is empty and the caller should
// fall back to the database.
func (c *LeaderboardCache) TopUserIDs(ctx context.Context, limit int) ([]uint, bool, error) {
	members, err := c.Redis.ZRevRange(ctx, globalLeaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, false, err
	}
	if len(members) == 0 {
		return nil, false, nil
	}

	ids := make([]uint, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, true, nil
}

// Rebuild replaces the sorted set with the given users' cumulative
// scores.
func (c *LeaderboardCache) Rebuild(ctx context.Context, users []model.User) error {
	if err := c.Redis.Del(ctx, globalLeaderboardKey).Err(); err != nil {
		return err
	}
	if len(users) == 0 {
		return nil
	}

	members := make([]*redis.Z, 0, len(users))
	for i := range users {
		members = append(members, &redis.Z{
			Score:  float64(users[i].TotalScore),
			Member: strconv.FormatUint(uint64(users[i].ID), 10),
		})
	}
	return c.Redis.ZAdd(ctx, globalLeaderboardKey, members...).Err()
}
