package services

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies timestamps for ledger entries. Tests inject a
// deterministic implementation; production uses the system UTC clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// IDGenerator supplies process-unique opaque identifiers for products
// and transactions.
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }
