package market

import sdkmath "cosmossdk.io/math"

// Store is the persistence boundary for a single market, standing in
// for the host's KV layer (out of scope per spec.md §1). Its key
// granularity mirrors original_source/contracts/market/src/state.rs's
// Item/Map declarations exactly: config, params and state are each a
// single slot; supplies, collateral and debts are per-user maps.
type Store interface {
	LoadConfig() (Config, error)
	SaveConfig(Config) error

	LoadParams() (Params, error)
	SaveParams(Params) error

	LoadState() (State, error)
	SaveState(State) error

	LoadSupply(user string) (sdkmath.Int, bool, error)
	SaveSupply(user string, scaled sdkmath.Int) error
	RemoveSupply(user string) error

	LoadCollateral(user string) (sdkmath.Int, bool, error)
	SaveCollateral(user string, amount sdkmath.Int) error
	RemoveCollateral(user string) error

	LoadDebt(user string) (sdkmath.Int, bool, error)
	SaveDebt(user string, scaled sdkmath.Int) error
	RemoveDebt(user string) error
}

// MapStore is an in-memory Store backed by plain Go maps, used by every
// test in this package and suitable as a reference implementation for a
// real KV-backed one.
type MapStore struct {
	config Config
	params Params
	state  State

	supplies   map[string]sdkmath.Int
	collateral map[string]sdkmath.Int
	debts      map[string]sdkmath.Int
}

// NewMapStore builds an empty MapStore pre-seeded with cfg, params and
// the initial state for a market created at now.
func NewMapStore(cfg Config, params Params, now uint64) *MapStore {
	return &MapStore{
		config:     cfg,
		params:     params,
		state:      NewState(now),
		supplies:   make(map[string]sdkmath.Int),
		collateral: make(map[string]sdkmath.Int),
		debts:      make(map[string]sdkmath.Int),
	}
}

func (s *MapStore) LoadConfig() (Config, error) { return s.config, nil }
func (s *MapStore) SaveConfig(c Config) error   { s.config = c; return nil }

func (s *MapStore) LoadParams() (Params, error) { return s.params, nil }
func (s *MapStore) SaveParams(p Params) error   { s.params = p; return nil }

func (s *MapStore) LoadState() (State, error) { return s.state, nil }
func (s *MapStore) SaveState(st State) error  { s.state = st; return nil }

func (s *MapStore) LoadSupply(user string) (sdkmath.Int, bool, error) {
	v, ok := s.supplies[user]
	if !ok {
		return sdkmath.ZeroInt(), false, nil
	}
	return v, true, nil
}

func (s *MapStore) SaveSupply(user string, scaled sdkmath.Int) error {
	s.supplies[user] = scaled
	return nil
}

func (s *MapStore) RemoveSupply(user string) error {
	delete(s.supplies, user)
	return nil
}

func (s *MapStore) LoadCollateral(user string) (sdkmath.Int, bool, error) {
	v, ok := s.collateral[user]
	if !ok {
		return sdkmath.ZeroInt(), false, nil
	}
	return v, true, nil
}

func (s *MapStore) SaveCollateral(user string, amount sdkmath.Int) error {
	s.collateral[user] = amount
	return nil
}

func (s *MapStore) RemoveCollateral(user string) error {
	delete(s.collateral, user)
	return nil
}

func (s *MapStore) LoadDebt(user string) (sdkmath.Int, bool, error) {
	v, ok := s.debts[user]
	if !ok {
		return sdkmath.ZeroInt(), false, nil
	}
	return v, true, nil
}

func (s *MapStore) SaveDebt(user string, scaled sdkmath.Int) error {
	s.debts[user] = scaled
	return nil
}

func (s *MapStore) RemoveDebt(user string) error {
	delete(s.debts, user)
	return nil
}
