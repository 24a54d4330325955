// Package dice provides the six-sided die the game consumes. The engine
// never rolls by itself; callers inject a Source so games stay
// deterministic under test.
package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	Min = 1
	Max = 6
)

// ErrInvalidFace is returned when a value outside [1,6] is given as a die face.
var ErrInvalidFace = errors.New("dice: face must be between 1 and 6")

// Source produces die rolls in [Min, Max].
type Source interface {
	Roll() int
}

// Random is a seeded uniform die. Safe for concurrent use.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a die seeded with seed. A zero seed uses the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniformly random face.
func (r *Random) Roll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Min + r.rng.Intn(Max)
}

// Sequence replays a fixed list of faces, cycling when exhausted.
type Sequence struct {
	values []int
	next   int
}

// NewSequence creates a replaying die. Panics on an empty or invalid list
// since that is a programming error.
func NewSequence(values ...int) *Sequence {
	if len(values) == 0 {
		panic("dice: NewSequence needs at least one value")
	}
	for _, v := range values {
		if !ValidFace(v) {
			panic(fmt.Sprintf("dice: NewSequence value %d out of range", v))
		}
	}
	return &Sequence{values: append([]int(nil), values...)}
}

// Roll returns the next value in the sequence.
func (s *Sequence) Roll() int {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// ValidFace reports whether v is a legal die face.
func ValidFace(v int) bool {
	return v >= Min && v <= Max
}

// ParseSequence parses a comma separated list of faces such as "6,3,5".
func ParseSequence(s string) ([]int, error) {
	var values []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("dice: cannot parse %q: %w", part, err)
		}
		if !ValidFace(v) {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidFace, v)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("dice: empty roll sequence %q", s)
	}
	return values, nil
}
