package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type IDGenerator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	return uuid.NewString(), nil
}

// TimeRandGenerator produces ids of the shape the original tracker
// used: unix-millis timestamp with a short random suffix. Kept so
// stores already holding such ids stay valid; UUIDGenerator is the
// default.
type TimeRandGenerator struct{}

func NewTimeRandGenerator() *TimeRandGenerator {
	return &TimeRandGenerator{}
}

func (g *TimeRandGenerator) NewID() (string, error) {
	suffix, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", fmt.Errorf("failed to generate id suffix: %w", err)
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + suffix.String(), nil
}
