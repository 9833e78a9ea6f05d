package service

import (
	"math"
	"sort"

	"github.com/Shandeepsugumar/quize-game-platform/internal/model"
)

// ScoreAnswer computes the points awarded for a single submission.
// A correct answer earns the question's base points times a speed
// bonus: answering instantly earns 1.5x, answering at the time limit
// earns 1.0x, linear in between. Incorrect or timed-out answers earn 0.
func ScoreAnswer(points, timeLimit int, timeSpent float64, correct bool) int {
	if !correct {
		return 0
	}

	ratio := 1.0
	if timeLimit > 0 {
		ratio = timeSpent / float64(timeLimit)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	multiplier := 1 + 0.5*(1-ratio)
	return int(math.Round(float64(points) * multiplier))
}

// RankingEntry is one row of a room's final (or live) standings.
type RankingEntry struct {
	UserID         uint                 `json:"userId"`
	User           *model.User          `json:"user,omitempty"`
	Score          int                  `json:"score"`
	CorrectAnswers int                  `json:"correctAnswers"`
	TotalQuestions int                  `json:"totalQuestions"`
	Accuracy       float64              `json:"accuracy"`
	Rank           int                  `json:"rank"`
	Answers        []model.PlayerAnswer `json:"answers,omitempty"`
}

// BuildRankings sorts the roster by score descending and assigns
// 1-based contiguous ranks. The sort is stable, so ties keep their
// join order.
func BuildRankings(players []model.RoomPlayer, totalQuestions int, includeAnswers bool) []RankingEntry {
	entries := make([]RankingEntry, 0, len(players))

	for i := range players {
		p := &players[i]

		correct := 0
		for _, a := range p.Answers {
			if a.IsCorrect {
				correct++
			}
		}

		accuracy := 0.0
		if totalQuestions > 0 {
			accuracy = float64(correct) / float64(totalQuestions) * 100
		}

		entry := RankingEntry{
			UserID:         p.UserID,
			User:           p.User,
			Score:          p.Score,
			CorrectAnswers: correct,
			TotalQuestions: totalQuestions,
			Accuracy:       accuracy,
		}
		if includeAnswers {
			entry.Answers = p.Answers
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}
