package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Shandeepsugumar/quize-game-platform/internal/model"
	"github.com/Shandeepsugumar/quize-game-platform/internal/repository"
	"github.com/Shandeepsugumar/quize-game-platform/internal/util"

	"gorm.io/gorm"
)

// In-memory stores mirroring the gorm repositories closely enough for
// service tests: the same sentinel errors, the same conditional status
// transitions, the same duplicate-answer rejection.

type memUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uint]*model.User)}
}

func (s *memUserStore) Create(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	user.ID = s.nextID
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memUserStore) FindByID(id uint) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *memUserStore) FindByIDs(ids []uint) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *memUserStore) FindByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memUserStore) FindByUsername(username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memUserStore) FindByGoogleID(googleID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.GoogleID == googleID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memUserStore) Update(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memUserStore) IncrementStats(userID uint, score int, won bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.TotalScore += score
	u.GamesPlayed++
	if won {
		u.GamesWon++
	}
	return nil
}

func (s *memUserStore) FindTopByTotalScore(limit int) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.User
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalScore > out[j].TotalScore
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memUserStore) CountWithScoreAbove(score int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, u := range s.users {
		if u.TotalScore > score {
			n++
		}
	}
	return n, nil
}

type memQuizStore struct {
	mu          sync.Mutex
	nextID      uint
	quizzes     map[uint]*model.Quiz
	timesPlayed map[uint]int
}

func newMemQuizStore() *memQuizStore {
	return &memQuizStore{
		quizzes:     make(map[uint]*model.Quiz),
		timesPlayed: make(map[uint]int),
	}
}

func (s *memQuizStore) Create(quiz *model.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	quiz.ID = s.nextID
	s.quizzes[quiz.ID] = quiz
	return nil
}

func (s *memQuizStore) FindByID(id uint) (*model.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (s *memQuizStore) List(filter repository.QuizFilter) ([]model.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Quiz
	for _, q := range s.quizzes {
		if !q.IsPublic {
			continue
		}
		if filter.Category != "" && q.Category != model.QuizCategory(filter.Category) {
			continue
		}
		if filter.Difficulty != "" && q.Difficulty != model.QuizDifficulty(filter.Difficulty) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(q.Title), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *q)
	}
	return out, nil
}

func (s *memQuizStore) ListByAuthor(authorID uint) ([]model.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Quiz
	for _, q := range s.quizzes {
		if q.CreatedByID == authorID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (s *memQuizStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quizzes, id)
	return nil
}

func (s *memQuizStore) IncrementTimesPlayed(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timesPlayed[id]++
	return nil
}

type memRoomStore struct {
	mu           sync.Mutex
	nextRoomID   uint
	nextPlayerID uint
	rooms        map[uint]*model.Room
	answers      map[uint][]model.PlayerAnswer // keyed by roster entry id
	quizzes      *memQuizStore
	users        *memUserStore
}

func newMemRoomStore(quizzes *memQuizStore, users *memUserStore) *memRoomStore {
	return &memRoomStore{
		rooms:   make(map[uint]*model.Room),
		answers: make(map[uint][]model.PlayerAnswer),
		quizzes: quizzes,
		users:   users,
	}
}

func (s *memRoomStore) Create(room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextRoomID++
	room.ID = s.nextRoomID
	for i := range room.Players {
		s.nextPlayerID++
		room.Players[i].ID = s.nextPlayerID
		room.Players[i].RoomID = room.ID
	}
	copied := *room
	copied.Players = append([]model.RoomPlayer(nil), room.Players...)
	s.rooms[room.ID] = &copied
	return nil
}

// hydrate reassembles a room the way the gorm repository's preloads do:
// quiz with questions, roster ordered by join time, answers per player.
func (s *memRoomStore) hydrate(room *model.Room) *model.Room {
	copied := *room
	copied.Players = make([]model.RoomPlayer, len(room.Players))
	for i, p := range room.Players {
		p.Answers = append([]model.PlayerAnswer(nil), s.answers[p.ID]...)
		if u, ok := s.users.users[p.UserID]; ok {
			userCopy := *u
			p.User = &userCopy
		}
		copied.Players[i] = p
	}
	sort.SliceStable(copied.Players, func(i, j int) bool {
		return copied.Players[i].JoinedAt.Before(copied.Players[j].JoinedAt)
	})
	if q, ok := s.quizzes.quizzes[room.QuizID]; ok {
		copied.Quiz = q
	}
	return &copied
}

func (s *memRoomStore) FindByCode(code string) (*model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code = strings.ToUpper(code)
	for _, room := range s.rooms {
		if room.Code == code {
			return s.hydrate(room), nil
		}
	}
	return nil, util.ErrRoomNotFound
}

func (s *memRoomStore) CodeExists(code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.Code == strings.ToUpper(code) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memRoomStore) ListWaiting(limit int) ([]model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Room
	for _, room := range s.rooms {
		if room.Status == model.RoomWaiting {
			out = append(out, *s.hydrate(room))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memRoomStore) AddPlayer(player *model.RoomPlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[player.RoomID]
	if !ok {
		return util.ErrRoomNotFound
	}
	s.nextPlayerID++
	player.ID = s.nextPlayerID
	room.Players = append(room.Players, *player)
	return nil
}

func (s *memRoomStore) CountPlayers(roomID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return 0, util.ErrRoomNotFound
	}
	return int64(len(room.Players)), nil
}

func (s *memRoomStore) StartGame(roomID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok || room.Status != model.RoomWaiting {
		return false, nil
	}
	now := time.Now()
	room.Status = model.RoomInProgress
	room.StartedAt = &now
	return true, nil
}

func (s *memRoomStore) CompleteGame(roomID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok || room.Status != model.RoomInProgress {
		return false, nil
	}
	now := time.Now()
	room.Status = model.RoomCompleted
	room.CompletedAt = &now
	return true, nil
}

func (s *memRoomStore) SetPowerUps(roomID uint, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return util.ErrRoomNotFound
	}
	room.PowerUpsEnabled = enabled
	return nil
}

func (s *memRoomStore) HasAnswer(playerID uint, questionIndex int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.answers[playerID] {
		if a.QuestionIndex == questionIndex {
			return true, nil
		}
	}
	return false, nil
}

func (s *memRoomStore) AddAnswer(answer *model.PlayerAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.answers[answer.RoomPlayerID] {
		if a.QuestionIndex == answer.QuestionIndex {
			return util.ErrAlreadyAnswered
		}
	}
	s.answers[answer.RoomPlayerID] = append(s.answers[answer.RoomPlayerID], *answer)
	return nil
}

func (s *memRoomStore) AddScore(playerID uint, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		for i := range room.Players {
			if room.Players[i].ID == playerID {
				room.Players[i].Score += points
				return nil
			}
		}
	}
	return util.ErrPlayerNotInRoom
}

type memResultStore struct {
	mu      sync.Mutex
	nextID  uint
	results []model.GameResult
}

func newMemResultStore() *memResultStore {
	return &memResultStore{}
}

func (s *memResultStore) Create(result *model.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	result.ID = s.nextID
	s.results = append(s.results, *result)
	return nil
}

func (s *memResultStore) ListRecent(limit int) ([]model.GameResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]model.GameResult(nil), s.results...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayedAt.After(out[j].PlayedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memResultStore) ListByUser(userID uint, limit int) ([]model.GameResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.GameResult
	for _, r := range s.results {
		for _, rk := range r.Rankings {
			if rk.UserID == userID {
				out = append(out, r)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayedAt.After(out[j].PlayedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memScoreCache struct {
	mu       sync.Mutex
	scores   map[uint]int
	rebuilds int
	failing  bool
}

func newMemScoreCache() *memScoreCache {
	return &memScoreCache{scores: make(map[uint]int)}
}

func (c *memScoreCache) UpdateScore(ctx context.Context, userID uint, totalScore int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return context.DeadlineExceeded
	}
	c.scores[userID] = totalScore
	return nil
}

func (c *memScoreCache) TopUserIDs(ctx context.Context, limit int) ([]uint, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return nil, false, context.DeadlineExceeded
	}
	if len(c.scores) == 0 {
		return nil, false, nil
	}
	type pair struct {
		id    uint
		score int
	}
	var pairs []pair
	for id, score := range c.scores {
		pairs = append(pairs, pair{id, score})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].score > pairs[j].score
	})
	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	ids := make([]uint, len(pairs))
	for i, p := range pairs {
		ids[i] = p.id
	}
	return ids, true, nil
}

func (c *memScoreCache) Rebuild(ctx context.Context, users []model.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return context.DeadlineExceeded
	}
	c.scores = make(map[uint]int)
	for _, u := range users {
		c.scores[u.ID] = u.TotalScore
	}
	c.rebuilds++
	return nil
}
