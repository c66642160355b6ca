package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateHEX returns size random bytes as upper case hex, two characters per
// byte.
func GenerateHEX(size int) string {
	bytes := make([]byte, size)
	if _, err := rand.Read(bytes); err != nil {
		return strings.Repeat("0", size*2)
	}
	return strings.ToUpper(hex.EncodeToString(bytes))
}
