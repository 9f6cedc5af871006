package factory

import "sort"

// Store is the persistence boundary for a single factory instance,
// standing in for the host's KV layer. Its key granularity mirrors
// original_source/contracts/factory/src/state.rs's Item/Map
// declarations exactly: config, pending owner and pending market salt
// are each a single slot; markets and their four lookup indices are
// per-key maps.
type Store interface {
	LoadConfig() (Config, error)
	SaveConfig(Config) error

	LoadPendingOwner() (string, bool, error)
	SavePendingOwner(addr string) error
	RemovePendingOwner() error

	LoadPendingMarketSalt() (*uint64, bool, error)
	SavePendingMarketSalt(salt *uint64) error
	RemovePendingMarketSalt() error

	LoadMarketCount() (uint64, error)
	SaveMarketCount(count uint64) error

	LoadMarket(marketID string) (MarketRecord, bool, error)
	SaveMarket(MarketRecord) error

	LoadMarketByAddress(address string) (string, bool, error)

	// ListMarketIDs, ListMarketIDsByCurator/Collateral/Debt return every
	// matching market_id in ascending lexical order, the ordering
	// query.go's pagination relies on to make start_after well-defined.
	ListMarketIDs() []string
	ListMarketIDsByCurator(curator string) []string
	ListMarketIDsByCollateral(denom string) []string
	ListMarketIDsByDebt(denom string) []string
}

// MapStore is an in-memory Store backed by plain Go maps, used by every
// test in this package and suitable as a reference implementation for a
// real KV-backed one.
type MapStore struct {
	config Config

	pendingOwner string
	hasPending   bool

	pendingSalt    *uint64
	hasPendingSalt bool

	marketCount uint64

	markets          map[string]MarketRecord
	marketsByAddress map[string]string
	byCurator        map[string]map[string]struct{}
	byCollateral     map[string]map[string]struct{}
	byDebt           map[string]map[string]struct{}
}

// NewMapStore builds an empty MapStore pre-seeded with cfg.
func NewMapStore(cfg Config) *MapStore {
	return &MapStore{
		config:           cfg,
		markets:          make(map[string]MarketRecord),
		marketsByAddress: make(map[string]string),
		byCurator:        make(map[string]map[string]struct{}),
		byCollateral:     make(map[string]map[string]struct{}),
		byDebt:           make(map[string]map[string]struct{}),
	}
}

func (s *MapStore) LoadConfig() (Config, error) { return s.config, nil }
func (s *MapStore) SaveConfig(c Config) error    { s.config = c; return nil }

func (s *MapStore) LoadPendingOwner() (string, bool, error) {
	return s.pendingOwner, s.hasPending, nil
}

func (s *MapStore) SavePendingOwner(addr string) error {
	s.pendingOwner = addr
	s.hasPending = true
	return nil
}

func (s *MapStore) RemovePendingOwner() error {
	s.pendingOwner = ""
	s.hasPending = false
	return nil
}

func (s *MapStore) LoadPendingMarketSalt() (*uint64, bool, error) {
	return s.pendingSalt, s.hasPendingSalt, nil
}

func (s *MapStore) SavePendingMarketSalt(salt *uint64) error {
	s.pendingSalt = salt
	s.hasPendingSalt = true
	return nil
}

func (s *MapStore) RemovePendingMarketSalt() error {
	s.pendingSalt = nil
	s.hasPendingSalt = false
	return nil
}

func (s *MapStore) LoadMarketCount() (uint64, error) { return s.marketCount, nil }
func (s *MapStore) SaveMarketCount(count uint64) error {
	s.marketCount = count
	return nil
}

func (s *MapStore) LoadMarket(marketID string) (MarketRecord, bool, error) {
	r, ok := s.markets[marketID]
	return r, ok, nil
}

func (s *MapStore) SaveMarket(r MarketRecord) error {
	s.markets[r.MarketID] = r
	s.marketsByAddress[r.Address] = r.MarketID
	indexInsert(s.byCurator, r.Curator, r.MarketID)
	indexInsert(s.byCollateral, r.CollateralDenom, r.MarketID)
	indexInsert(s.byDebt, r.DebtDenom, r.MarketID)
	return nil
}

func (s *MapStore) LoadMarketByAddress(address string) (string, bool, error) {
	id, ok := s.marketsByAddress[address]
	return id, ok, nil
}

func (s *MapStore) ListMarketIDs() []string {
	ids := make([]string, 0, len(s.markets))
	for id := range s.markets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *MapStore) ListMarketIDsByCurator(curator string) []string {
	return sortedKeys(s.byCurator[curator])
}

func (s *MapStore) ListMarketIDsByCollateral(denom string) []string {
	return sortedKeys(s.byCollateral[denom])
}

func (s *MapStore) ListMarketIDsByDebt(denom string) []string {
	return sortedKeys(s.byDebt[denom])
}

func indexInsert(index map[string]map[string]struct{}, key, marketID string) {
	set, ok := index[key]
	if !ok {
		set = make(map[string]struct{})
		index[key] = set
	}
	set[marketID] = struct{}{}
}

func sortedKeys(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
