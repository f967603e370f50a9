// Package idgen produces session-unique identifiers such as "ORD-LX2J1K3A-4F9QZ".
package idgen

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	PrefixCustomer    = "CUS"
	PrefixEmployee    = "EMP"
	PrefixOrder       = "ORD"
	PrefixPayment     = "PAY"
	PrefixTransaction = "TXN"

	suffixLen = 5
	alphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Generator builds identifiers from a prefix, the wall clock and a random suffix.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// New constructs Generator seeded from the current time.
func New() *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// Next returns a new identifier for prefix.
func (g *Generator) Next(prefix string) string {
	stamp := strconv.FormatInt(g.now().UnixMilli(), 36)

	g.mu.Lock()
	suffix := make([]byte, suffixLen)
	for i := range suffix {
		suffix[i] = alphabet[g.rng.Intn(len(alphabet))]
	}
	g.mu.Unlock()

	return strings.ToUpper(prefix + "-" + stamp + "-" + string(suffix))
}
