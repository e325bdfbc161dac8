package auth

//go:generate mockgen -source=hash.go -destination=mock_hash.go -package=auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyKey = errors.New("key cannot be empty")

type KeyHasherInterface interface {
	HashKey(key string) (string, error)
	CompareKey(hashedKey, key string) bool
}

// KeyHasher stores operator keys as bcrypt hashes.
type KeyHasher struct{}

func (KeyHasher) HashKey(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (KeyHasher) CompareKey(hashedKey, key string) bool {
	if hashedKey == "" || key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(key)) == nil
}
