// Package authutil provides password hashing and verification.
//
// Passwords are hashed with bcrypt (salted, adaptive cost). Verification
// goes through bcrypt.CompareHashAndPassword only; hashes are never
// compared byte-for-byte.
package authutil

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used when Configure is not called.
const DefaultCost = 12

var (
	mu   sync.RWMutex
	cost = DefaultCost
)

// Configure overrides the bcrypt cost, typically from app config at
// startup. Values outside bcrypt's supported range are rejected and the
// current cost is kept.
func Configure(c int, logger *zap.Logger) {
	if c < bcrypt.MinCost || c > bcrypt.MaxCost {
		if logger != nil {
			logger.Warn("ignoring out-of-range bcrypt cost", zap.Int("cost", c))
		}
		return
	}
	mu.Lock()
	cost = c
	mu.Unlock()
	if logger != nil {
		logger.Info("bcrypt cost configured", zap.Int("cost", c))
	}
}

// Cost returns the bcrypt cost in effect.
func Cost() int {
	mu.RLock()
	defer mu.RUnlock()
	return cost
}

// HashPassword hashes a plaintext password with a fresh random salt.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), Cost())
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
