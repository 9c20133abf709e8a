package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// TemporaryPasswordLength: длина временного пароля нового пользователя.
const TemporaryPasswordLength = 8

const (
	passwordLetters = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"
	passwordDigits  = "23456789"
)

// NewID возвращает новый идентификатор черновика.
func NewID() string {
	return uuid.NewString()
}

// GenerateTemporaryPassword создаёт пароль из букв и цифр (минимум по одной каждого).
func GenerateTemporaryPassword() (string, error) {
	alphabet := passwordLetters + passwordDigits
	for {
		var b strings.Builder
		for i := 0; i < TemporaryPasswordLength; i++ {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
			if err != nil {
				return "", fmt.Errorf("failed to generate password: %w", err)
			}
			b.WriteByte(alphabet[n.Int64()])
		}
		pwd := b.String()
		if strings.ContainsAny(pwd, passwordDigits) && strings.ContainsAny(pwd, passwordLetters) {
			return pwd, nil
		}
	}
}
