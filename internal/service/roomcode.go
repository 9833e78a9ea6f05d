package service

import (
	"crypto/rand"
	"math/big"

	"github.com/Shandeepsugumar/quize-game-platform/internal/model"
)

const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomRoomCode returns a 6-character uppercase alphanumeric code.
func RandomRoomCode() (string, error) {
	buf := make([]byte, model.RoomCodeLength)
	max := big.NewInt(int64(len(roomCodeAlphabet)))

	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = roomCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// GenerateRoomCode rejection-samples codes until one does not collide
// with an existing room. Codes of completed rooms stay reserved.
func GenerateRoomCode(exists func(code string) (bool, error)) (string, error) {
	for {
		code, err := RandomRoomCode()
		if err != nil {
			return "", err
		}

		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
}
