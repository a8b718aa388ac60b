package netbook

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// MatchID correlates an incoming position with a previously booked one. It
// is opaque, comparable for equality, and lexicographically ordered by
// creation time. The zero value means "no identifier": such positions are
// never matched against prior state by a non-strict portfolio.
type MatchID string

var (
	matchMu   sync.Mutex
	matchMono io.Reader
)

func init() {
	// Seed a PRNG from crypto/rand so ULID entropy is unpredictable.
	// ulid.Monotonic keeps identifiers generated within the same millisecond
	// lexicographically increasing.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	matchMono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// NewMatchID returns a fresh identifier, ordered by creation.
func NewMatchID() MatchID {
	matchMu.Lock()
	defer matchMu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), matchMono)
	if err != nil {
		// Only possible if time goes backwards or entropy fails.
		panic(err)
	}
	return MatchID(id.String())
}

// IsZero reports whether the identifier is absent.
func (m MatchID) IsZero() bool { return m == "" }

// String implements the fmt.Stringer interface.
func (m MatchID) String() string { return string(m) }
