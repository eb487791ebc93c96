package services

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
)

const referencePrefix = "TXR"

// maxReferenceAttempts bounds the retry loop when a generated reference
// already exists in the booking store.
const maxReferenceAttempts = 5

// ReferenceGenerator hands out booking references of the form TXR<number>.
// The counter is seeded from the wall clock once and only moves forward,
// so references stay unique across concurrent bookings within a process.
type ReferenceGenerator struct {
	counter atomic.Int64
}

func NewReferenceGenerator() *ReferenceGenerator {
	g := &ReferenceGenerator{}
	g.counter.Store(time.Now().UnixMilli())
	return g
}

func (g *ReferenceGenerator) next() string {
	return referencePrefix + strconv.FormatInt(g.counter.Add(1), 10)
}

// Next returns a reference that does not exist in the given store yet.
// The existence check covers references persisted by earlier process runs.
func (g *ReferenceGenerator) Next(store BookingStore) (string, error) {
	var last string
	for i := 0; i < maxReferenceAttempts; i++ {
		ref := g.next()
		last = ref
		_, err := store.FindByReference(ref)
		if domain.IsNotFound(err) {
			return ref, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", domain.CollisionError{Reference: last}
}
