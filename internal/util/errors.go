package util

import "errors"

var (
	// Identity
	ErrEmailRegistered    = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	// Quiz catalog
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrNotQuizAuthor    = errors.New("not authorized to delete this quiz")
	ErrQuestionNotFound = errors.New("question not found")

	// Room lifecycle
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomFull           = errors.New("room is full")
	ErrRoomNotWaiting     = errors.New("game already in progress or completed")
	ErrNotHost            = errors.New("only the host may perform this action")
	ErrNotEnoughPlayers   = errors.New("at least 1 player required to start")
	ErrGameNotInProgress  = errors.New("game is not in progress")
	ErrPlayerNotInRoom    = errors.New("player not found in room")
	ErrAlreadyAnswered    = errors.New("already answered this question")
	ErrGameAlreadyStarted = errors.New("cannot change settings after game has started")
)
