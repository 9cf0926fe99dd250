package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderNumber produces a human-readable order number. Uniqueness
// relies on the millisecond timestamp plus a random suffix; concurrent
// checkouts do not contend for a shared counter.
func GenerateOrderNumber() string {
	suffix, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return fmt.Sprintf("HE%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("HE%d%04d", time.Now().UnixMilli(), suffix.Int64())
}
