// Package market implements the per-market state machine: interest
// accrual, health/limits, position operations, liquidation and
// parameter governance for a single isolated collateral/debt pair.
package market

import (
	"go.uber.org/zap"

	"github.com/stonefinance/stone-sub000/pkg/oracle"
)

// SecondsPerYear is the annualization denominator used throughout
// interest accrual, spec.md §4.4 step 4.
const SecondsPerYear = 31_536_000

// Market binds a Store to the oracle querier and logger it needs to
// perform price-dependent operations, mirroring how the teacher's
// pkg/base.Strategy threads a *zap.Logger through every operation.
type Market struct {
	Store  Store
	Oracle oracle.Querier
	Logger *zap.Logger
}

// New builds a Market. A nil Logger is replaced with zap's no-op
// logger so callers never need a nil check.
func New(store Store, querier oracle.Querier, logger *zap.Logger) *Market {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Market{Store: store, Oracle: querier, Logger: logger}
}

// Recipient resolves an optional recipient override, defaulting to
// sender, matching every position operation's `recipient: Option<String>`
// convention in the original contract.
func Recipient(sender string, recipient *string) string {
	if recipient != nil && *recipient != "" {
		return *recipient
	}
	return sender
}

// Transfer describes an outbound token transfer a position operation
// wants the host to perform. Operations return these instead of
// dispatching a bank send themselves, since the host's bank-transfer
// machinery is explicitly out of scope (spec.md §1); the host is
// expected to execute every Transfer in a returned Outcome atomically
// with the rest of the operation's storage writes.
type Transfer struct {
	ToAddress string
	Denom     string
	Amount    string // decimal string, matching Uint128's Display
}

// Outcome is returned by every mutating market operation: the outbound
// transfers the host must perform and the event attributes it should
// emit, mirroring CosmWasm's Response::new().add_message(...).add_attribute(...)
// builder without this repo performing the dispatch itself.
type Outcome struct {
	Action     string
	Attributes map[string]string
	Transfers  []Transfer
}

func newOutcome(action string) *Outcome {
	return &Outcome{Action: action, Attributes: map[string]string{"action": action}}
}

func (o *Outcome) attr(key, value string) *Outcome {
	o.Attributes[key] = value
	return o
}

func (o *Outcome) transfer(to, denom, amount string) *Outcome {
	o.Transfers = append(o.Transfers, Transfer{ToAddress: to, Denom: denom, Amount: amount})
	return o
}
