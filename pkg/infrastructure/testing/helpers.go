// Package testing provides deterministic test doubles for the service's
// injectable collaborators and for the persistence port.
package testing

import (
	"context"
	"fmt"
	"time"

	"github.com/mleone/stockctl/pkg/domain/entities"
	"github.com/mleone/stockctl/pkg/domain/repositories"
)

// FakeClock returns strictly increasing instants, advancing by Step on
// every call. History-ordering assertions rely on this monotonicity.
type FakeClock struct {
	Current time.Time
	Step    time.Duration
}

// NewFakeClock creates a clock starting at start and advancing by step
// per Now call.
func NewFakeClock(start time.Time, step time.Duration) *FakeClock {
	return &FakeClock{Current: start, Step: step}
}

func (c *FakeClock) Now() time.Time {
	now := c.Current
	c.Current = c.Current.Add(c.Step)
	return now
}

// SequentialIDs yields prefix-1, prefix-2, ... so tests can reference
// generated identifiers without depending on randomness.
type SequentialIDs struct {
	Prefix string
	next   int
}

func (g *SequentialIDs) NewID() string {
	g.next++
	return fmt.Sprintf("%s-%d", g.Prefix, g.next)
}

// FlakyStore wraps a Store and fails selected operations while counting
// every call, so tests can assert both the persistence discipline
// (which saves ran) and the no-rollback policy on save failure.
type FlakyStore struct {
	Inner repositories.Store

	FailLoadProducts     bool
	FailLoadTransactions bool
	FailSaveProducts     bool
	FailSaveTransactions bool

	LoadProductsCalls     int
	LoadTransactionsCalls int
	SaveProductsCalls     int
	SaveTransactionsCalls int
}

// Verify interface compliance
var _ repositories.Store = (*FlakyStore)(nil)

func (s *FlakyStore) LoadProducts(ctx context.Context) ([]entities.Product, error) {
	s.LoadProductsCalls++
	if s.FailLoadProducts {
		return nil, &repositories.ReadError{Path: "products.json", Err: errInjected}
	}
	return s.Inner.LoadProducts(ctx)
}

func (s *FlakyStore) LoadTransactions(ctx context.Context) ([]entities.Transaction, error) {
	s.LoadTransactionsCalls++
	if s.FailLoadTransactions {
		return nil, &repositories.ReadError{Path: "transactions.json", Err: errInjected}
	}
	return s.Inner.LoadTransactions(ctx)
}

func (s *FlakyStore) SaveProducts(ctx context.Context, products []entities.Product) error {
	s.SaveProductsCalls++
	if s.FailSaveProducts {
		return &repositories.WriteError{Path: "products.json", Err: errInjected}
	}
	return s.Inner.SaveProducts(ctx, products)
}

func (s *FlakyStore) SaveTransactions(ctx context.Context, transactions []entities.Transaction) error {
	s.SaveTransactionsCalls++
	if s.FailSaveTransactions {
		return &repositories.WriteError{Path: "transactions.json", Err: errInjected}
	}
	return s.Inner.SaveTransactions(ctx, transactions)
}

var errInjected = fmt.Errorf("injected failure")
