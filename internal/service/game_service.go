package service

import (
	"context"
	"time"

	"github.com/Shandeepsugumar/quize-game-platform/internal/model"
	"github.com/Shandeepsugumar/quize-game-platform/internal/util"
)

type GameService struct {
	Rooms   RoomStore
	Quizzes QuizStore
	Users   UserStore
	Results GameResultStore
	Cache   ScoreCache
}

func NewGameService(rooms RoomStore, quizzes QuizStore, users UserStore, results GameResultStore, cache ScoreCache) *GameService {
	return &GameService{
		Rooms:   rooms,
		Quizzes: quizzes,
		Users:   users,
		Results: results,
		Cache:   cache,
	}
}

type AnswerResult struct {
	IsCorrect     bool `json:"isCorrect"`
	Points        int  `json:"points"`
	CorrectAnswer int  `json:"correctAnswer"`
	TotalScore    int  `json:"totalScore"`
}

// SubmitAnswer records one player's answer for one question index.
// A second submission for the same index is rejected, never overwritten.
func (s *GameService) SubmitAnswer(userID uint, code string, questionIndex, selectedAnswer int, timeSpent float64) (*AnswerResult, error) {
	room, err := s.Rooms.FindByCode(code)
	if err != nil {
		return nil, err
	}

	if room.Status != model.RoomInProgress {
		return nil, util.ErrGameNotInProgress
	}

	player := room.PlayerByUserID(userID)
	if player == nil {
		return nil, util.ErrPlayerNotInRoom
	}

	if room.Quiz == nil || questionIndex < 0 || questionIndex >= len(room.Quiz.Questions) {
		return nil, util.ErrQuestionNotFound
	}
	question := room.Quiz.Questions[questionIndex]

	answered, err := s.Rooms.HasAnswer(player.ID, questionIndex)
	if err != nil {
		return nil, err
	}
	if answered {
		return nil, util.ErrAlreadyAnswered
	}

	// timeSpent is client-reported; clamp it so a hostile client cannot
	// exceed the 1.5x bonus.
	if timeSpent < 0 {
		timeSpent = 0
	}
	if timeSpent > float64(question.TimeLimit) {
		timeSpent = float64(question.TimeLimit)
	}

	isCorrect := selectedAnswer != model.TimeoutAnswer && selectedAnswer == question.CorrectAnswer
	points := ScoreAnswer(question.Points, question.TimeLimit, timeSpent, isCorrect)

	if err := s.Rooms.AddAnswer(&model.PlayerAnswer{
		RoomPlayerID:   player.ID,
		QuestionIndex:  questionIndex,
		SelectedAnswer: selectedAnswer,
		IsCorrect:      isCorrect,
		Points:         points,
		TimeSpent:      timeSpent,
	}); err != nil {
		return nil, err
	}

	if err := s.Rooms.AddScore(player.ID, points); err != nil {
		return nil, err
	}

	return &AnswerResult{
		IsCorrect:     isCorrect,
		Points:        points,
		CorrectAnswer: question.CorrectAnswer,
		TotalScore:    player.Score + points,
	}, nil
}

// CompleteGame finalizes an in-progress room: computes rankings, writes
// the immutable GameResult, bumps each participant's cumulative stats
// and the quiz play count.
func (s *GameService) CompleteGame(ctx context.Context, userID uint, code string) ([]RankingEntry, error) {
	room, err := s.Rooms.FindByCode(code)
	if err != nil {
		return nil, err
	}

	if room.HostID != userID {
		return nil, util.ErrNotHost
	}

	completed, err := s.Rooms.CompleteGame(room.ID)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, util.ErrGameNotInProgress
	}

	totalQuestions := 0
	if room.Quiz != nil {
		totalQuestions = len(room.Quiz.Questions)
	}
	rankings := BuildRankings(room.Players, totalQuestions, false)

	result := &model.GameResult{
		RoomID:   room.ID,
		QuizID:   room.QuizID,
		PlayedAt: time.Now(),
	}
	for _, entry := range rankings {
		result.Rankings = append(result.Rankings, model.GameRanking{
			UserID:         entry.UserID,
			Score:          entry.Score,
			CorrectAnswers: entry.CorrectAnswers,
			TotalQuestions: entry.TotalQuestions,
			Accuracy:       entry.Accuracy,
			Rank:           entry.Rank,
		})
	}
	if len(rankings) > 0 {
		winnerID := rankings[0].UserID
		result.WinnerID = &winnerID
	}
	if err := s.Results.Create(result); err != nil {
		return nil, err
	}

	for _, entry := range rankings {
		if err := s.Users.IncrementStats(entry.UserID, entry.Score, entry.Rank == 1); err != nil {
			return nil, err
		}
		// The cache is best-effort; MySQL stays authoritative.
		if user, err := s.Users.FindByID(entry.UserID); err == nil {
			_ = s.Cache.UpdateScore(ctx, user.ID, user.TotalScore)
		}
	}

	if err := s.Quizzes.IncrementTimesPlayed(room.QuizID); err != nil {
		return nil, err
	}

	return rankings, nil
}

// GetResults returns the room plus live standings, including each
// player's answer log.
func (s *GameService) GetResults(code string) (*model.Room, []RankingEntry, error) {
	room, err := s.Rooms.FindByCode(code)
	if err != nil {
		return nil, nil, err
	}

	totalQuestions := 0
	if room.Quiz != nil {
		totalQuestions = len(room.Quiz.Questions)
	}
	rankings := BuildRankings(room.Players, totalQuestions, true)
	return room, rankings, nil
}
