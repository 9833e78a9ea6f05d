package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Shandeepsugumar/quize-game-platform/internal/model"
	"github.com/Shandeepsugumar/quize-game-platform/internal/util"
)

func (e *testEnv) startedRoom(t *testing.T, playerIDs ...uint) *model.Room {
	t.Helper()
	room := e.createRoom(t, 1, 0)
	for _, id := range playerIDs {
		if _, err := e.roomService.JoinRoom(id, room.Code); err != nil {
			t.Fatalf("join failed: %v", err)
		}
	}
	started, err := e.roomService.StartGame(room.Code, 1)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	return started
}

func TestSubmitAnswerCorrect(t *testing.T) {
	env := newTestEnv(t)
	room := env.startedRoom(t, 2)

	res, err := env.gameService.SubmitAnswer(2, room.Code, 0, 0, 0)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if !res.IsCorrect {
		t.Fatalf("answer 0 for question 0 should be correct")
	}
	if res.Points != 15 {
		t.Fatalf("instant correct answer should earn 15, got %d", res.Points)
	}
	if res.CorrectAnswer != 0 {
		t.Fatalf("response should reveal the correct answer, got %d", res.CorrectAnswer)
	}
	if res.TotalScore != 15 {
		t.Fatalf("expected running total 15, got %d", res.TotalScore)
	}
}

func TestSubmitAnswerWrong(t *testing.T) {
	env := newTestEnv(t)
	room := env.startedRoom(t, 2)

	res, err := env.gameService.SubmitAnswer(2, room.Code, 0, 3, 2)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if res.IsCorrect || res.Points != 0 {
		t.Fatalf("wrong answer must earn nothing, got %+v", res)
	}
}

func TestSubmitAnswerTimeout(t *testing.T) {
	env := newTestEnv(t)
	room := env.startedRoom(t, 2)

	res, err := env.gameService.SubmitAnswer(2, room.Code, 0, model.TimeoutAnswer, 30)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if res.IsCorrect || res.Points != 0 {
		t.Fatalf("timeout must earn nothing, got %+v", res)
	}
}

func TestSubmitAnswerClampsReportedTime(t *testing.T) {
	env := newTestEnv(t)
	room := env.startedRoom(t, 2)

	res, err := env.gameService.SubmitAnswer(2, room.Code, 0, 0, 500)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if res.Points != 10 {
		t.Fatalf("over-reported time should clamp to base points, got %d", res.Points)
	}

	res, err = env.gameService.SubmitAnswer(2, room.Code, 1, 1, -50)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if res.Points != 15 {
		t.Fatalf("negative time should clamp to the full bonus, got %d", res.Points)
	}
}

func TestSubmitAnswerDuplicateRejected(t *testing.T) {
	env := newTestEnv(t)
	room := env.startedRoom(t, 2)

	first, err := env.gameService.SubmitAnswer(2, room.Code, 0, 0, 0)
	if err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	_, err = env.gameService.SubmitAnswer(2, room.Code, 0, 1, 5)
	if !errors.Is(err, util.ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}

	// The duplicate must not change the recorded score.
	current, err := env.roomService.GetRoom(room.Code)
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	player := current.PlayerByUserID(2)
	if player == nil || player.Score != first.Points {
		t.Fatalf("score changed after rejected duplicate: %+v", player)
	}
	if len(player.Answers) != 1 {
		t.Fatalf("expected exactly one answer recorded, got %d", len(player.Answers))
	}
}

func TestSubmitAnswerGuards(t *testing.T) {
	env := newTestEnv(t)
	waiting := env.createRoom(t, 1, 0)

	if _, err := env.gameService.SubmitAnswer(1, waiting.Code, 0, 0, 0); !errors.Is(err, util.ErrGameNotInProgress) {
		t.Fatalf("expected ErrGameNotInProgress before start, got %v", err)
	}

	room := env.startedRoom(t, 2)

	if _, err := env.gameService.SubmitAnswer(3, room.Code, 0, 0, 0); !errors.Is(err, util.ErrPlayerNotInRoom) {
		t.Fatalf("expected ErrPlayerNotInRoom, got %v", err)
	}
	if _, err := env.gameService.SubmitAnswer(2, room.Code, 5, 0, 0); !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound for out-of-range index, got %v", err)
	}
	if _, err := env.gameService.SubmitAnswer(2, room.Code, -1, 0, 0); !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound for negative index, got %v", err)
	}
}

func TestCompleteGame(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	room := env.startedRoom(t, 2)

	// Alice: both right, instantly. Bob: one right at the limit, one wrong.
	if _, err := env.gameService.SubmitAnswer(1, room.Code, 0, 0, 0); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := env.gameService.SubmitAnswer(1, room.Code, 1, 1, 0); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := env.gameService.SubmitAnswer(2, room.Code, 0, 0, 30); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := env.gameService.SubmitAnswer(2, room.Code, 1, 0, 5); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rankings, err := env.gameService.CompleteGame(ctx, 1, room.Code)
	if err != nil {
		t.Fatalf("CompleteGame failed: %v", err)
	}

	if len(rankings) != 2 {
		t.Fatalf("expected 2 ranked players, got %d", len(rankings))
	}
	if rankings[0].UserID != 1 || rankings[0].Score != 30 || rankings[0].Rank != 1 {
		t.Fatalf("unexpected winner row: %+v", rankings[0])
	}
	if rankings[1].UserID != 2 || rankings[1].Score != 10 || rankings[1].Rank != 2 {
		t.Fatalf("unexpected runner-up row: %+v", rankings[1])
	}
	if rankings[0].Accuracy != 100 || rankings[1].Accuracy != 50 {
		t.Fatalf("accuracy wrong: %v / %v", rankings[0].Accuracy, rankings[1].Accuracy)
	}

	// Room is closed.
	closed, err := env.roomService.GetRoom(room.Code)
	if err != nil {
		t.Fatalf("GetRoom failed: %v", err)
	}
	if closed.Status != model.RoomCompleted || closed.CompletedAt == nil {
		t.Fatalf("room should be completed, got %+v", closed.Status)
	}

	// An immutable result was archived with the winner recorded.
	archived, err := env.results.ListRecent(10)
	if err != nil || len(archived) != 1 {
		t.Fatalf("expected one archived result, got %d (%v)", len(archived), err)
	}
	if archived[0].WinnerID == nil || *archived[0].WinnerID != 1 {
		t.Fatalf("winner not recorded: %+v", archived[0].WinnerID)
	}
	if len(archived[0].Rankings) != 2 {
		t.Fatalf("archived rankings missing: %+v", archived[0].Rankings)
	}

	// Cumulative stats moved for both players, win only for the winner.
	alice, _ := env.users.FindByID(1)
	bob, _ := env.users.FindByID(2)
	if alice.TotalScore != 30 || alice.GamesPlayed != 1 || alice.GamesWon != 1 {
		t.Fatalf("alice stats wrong: %+v", alice)
	}
	if bob.TotalScore != 10 || bob.GamesPlayed != 1 || bob.GamesWon != 0 {
		t.Fatalf("bob stats wrong: %+v", bob)
	}

	// Leaderboard cache mirrors the new totals.
	if env.cache.scores[1] != 30 || env.cache.scores[2] != 10 {
		t.Fatalf("cache not updated: %+v", env.cache.scores)
	}

	if env.quizzes.timesPlayed[env.quiz.ID] != 1 {
		t.Fatalf("quiz play count not bumped")
	}
}

func TestTwoQuestionGameScenario(t *testing.T) {
	env := newTestEnv(t)
	room := env.startedRoom(t, 2)

	first, err := env.gameService.SubmitAnswer(2, room.Code, 0, 0, 0)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if first.Points != 15 {
		t.Fatalf("instant correct answer should earn 15, got %d", first.Points)
	}

	second, err := env.gameService.SubmitAnswer(2, room.Code, 1, 3, 4)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if second.Points != 0 {
		t.Fatalf("wrong answer should earn 0, got %d", second.Points)
	}

	rankings, err := env.gameService.CompleteGame(context.Background(), 1, room.Code)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	var row *RankingEntry
	for i := range rankings {
		if rankings[i].UserID == 2 {
			row = &rankings[i]
		}
	}
	if row == nil {
		t.Fatalf("player missing from rankings")
	}
	if row.Score != 15 || row.CorrectAnswers != 1 || row.Accuracy != 50 {
		t.Fatalf("expected score 15, 1 correct, 50%% accuracy; got %+v", row)
	}
}

func TestCompleteGameHostOnly(t *testing.T) {
	env := newTestEnv(t)
	room := env.startedRoom(t, 2)

	_, err := env.gameService.CompleteGame(context.Background(), 2, room.Code)
	if !errors.Is(err, util.ErrNotHost) {
		t.Fatalf("expected ErrNotHost, got %v", err)
	}
}

func TestCompleteGameRequiresInProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	waiting := env.createRoom(t, 1, 0)
	if _, err := env.gameService.CompleteGame(ctx, 1, waiting.Code); !errors.Is(err, util.ErrGameNotInProgress) {
		t.Fatalf("expected ErrGameNotInProgress on a waiting room, got %v", err)
	}

	room := env.startedRoom(t, 2)
	if _, err := env.gameService.CompleteGame(ctx, 1, room.Code); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}
	if _, err := env.gameService.CompleteGame(ctx, 1, room.Code); !errors.Is(err, util.ErrGameNotInProgress) {
		t.Fatalf("expected ErrGameNotInProgress on second completion, got %v", err)
	}
}

func TestCompleteGameSurvivesCacheFailure(t *testing.T) {
	env := newTestEnv(t)
	room := env.startedRoom(t, 2)
	env.cache.failing = true

	if _, err := env.gameService.SubmitAnswer(1, room.Code, 0, 0, 0); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := env.gameService.CompleteGame(context.Background(), 1, room.Code); err != nil {
		t.Fatalf("completion must not depend on the cache: %v", err)
	}

	alice, _ := env.users.FindByID(1)
	if alice.TotalScore != 15 {
		t.Fatalf("database stats must still move, got %+v", alice)
	}
}

func TestGetResultsIncludesAnswerLog(t *testing.T) {
	env := newTestEnv(t)
	room := env.startedRoom(t, 2)

	if _, err := env.gameService.SubmitAnswer(2, room.Code, 0, 0, 3); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := env.gameService.CompleteGame(context.Background(), 1, room.Code); err != nil {
		t.Fatalf("complete: %v", err)
	}

	resultRoom, rankings, err := env.gameService.GetResults(room.Code)
	if err != nil {
		t.Fatalf("GetResults failed: %v", err)
	}
	if resultRoom.Status != model.RoomCompleted {
		t.Fatalf("expected completed room, got %s", resultRoom.Status)
	}

	var bob *RankingEntry
	for i := range rankings {
		if rankings[i].UserID == 2 {
			bob = &rankings[i]
		}
	}
	if bob == nil {
		t.Fatalf("bob missing from results")
	}
	if len(bob.Answers) != 1 || bob.Answers[0].QuestionIndex != 0 {
		t.Fatalf("answer log missing: %+v", bob.Answers)
	}
}
