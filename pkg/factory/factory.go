package factory

import (
	"go.uber.org/zap"

	"github.com/stonefinance/stone-sub000/pkg/oracle"
)

// Factory binds a Store to the oracle querier and logger it needs to
// pre-validate a curator's oracle configuration at market-creation
// time, mirroring pkg/market.Market's constructor shape.
type Factory struct {
	Store  Store
	Oracle oracle.Querier
	Logger *zap.Logger
}

// New builds a Factory. A nil Logger is replaced with zap's no-op
// logger so callers never need a nil check.
func New(store Store, querier oracle.Querier, logger *zap.Logger) *Factory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{Store: store, Oracle: querier, Logger: logger}
}

// Transfer describes an outbound token transfer an operation wants the
// host to perform, mirroring pkg/market.Transfer.
type Transfer struct {
	ToAddress string
	Denom     string
	Amount    string
}

// Outcome is returned by every mutating factory operation, mirroring
// pkg/market.Outcome. Factory keeps its own copy rather than importing
// market's since the two are conceptually separate contracts with
// independent event/message surfaces in the system this ports.
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
