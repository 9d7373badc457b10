package quota

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for policy rejections. These are expected outcomes and map
// to a success:false envelope with a 200 status, never a server error.
var (
	ErrQuotaExceeded   = errors.New("quota: free usage limit reached")
	ErrPremiumRequired = errors.New("quota: premium plan required")
)

// enforces plan and free-tier usage policy for generation requests
type Ledger struct {
	usage UsageCommitter
}

// creates a ledger that commits consumption through the given identity store
func NewLedger(usage UsageCommitter) *Ledger {
	return &Ledger{usage: usage}
}

// CheckAndReserve authorizes a request before any provider call is made.
// It never mutates consumption: advancement happens in Commit, after a
// successful generation, so a provider failure costs no quota.
func (l *Ledger) CheckAndReserve(account Account, kind Kind) error {
	if kind.PremiumOnly() && account.Plan != PlanPremium {
		return ErrPremiumRequired
	}

	if kind.Metered() && account.Plan != PlanPremium && account.FreeUsage >= FreeLimit {
		return ErrQuotaExceeded
	}

	return nil
}

// Commit advances consumption by one after a successful metered generation.
// Premium usage is never tracked, and premium-gated kinds never meter.
func (l *Ledger) Commit(ctx context.Context, account Account, kind Kind) error {
	if !kind.Metered() || account.Plan == PlanPremium {
		return nil
	}

	if err := l.usage.IncrementFreeUsage(ctx, account.ID); err != nil {
		return fmt.Errorf("failed to commit usage for %s: %w", account.ID, err)
	}

	return nil
}
