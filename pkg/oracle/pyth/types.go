// Package pyth implements the Pyth-backed oracle.Querier adapter: an
// off-chain Hermes price fetch (for building update messages) and an
// on-chain smart-query read against the oracle contract the market was
// configured with, adapted from
// pkg/contracts/pyth/{helpers.go,message.go,queryclient.go,types.go}.
package pyth

// Binary mirrors the Hermes REST API's "binary" response field.
type Binary struct {
	Encoding string   `json:"encoding"`
	Data     []string `json:"data"`
}

// Price is a single Hermes price point: signed mantissa, confidence and
// base-10 exponent, plus the unix publish time.
type Price struct {
	Price       string `json:"price"`
	Confidence  string `json:"conf"`
	Exponent    int    `json:"expo"`
	PublishTime int64  `json:"publish_time"`
}

// Metadata carries Hermes' proof-availability bookkeeping; this repo
// only reads PublishTime off Price, but keeps the field for parity with
// the wire format.
type Metadata struct {
	Slot               int64 `json:"slot"`
	ProofAvailableTime int64 `json:"proof_available_time"`
	PrevPublishTime    int64 `json:"prev_publish_time"`
}

// Parsed is one feed entry in a Hermes /v2/updates/price/latest response.
type Parsed struct {
	ID       string   `json:"id"`
	Price    Price    `json:"price"`
	EmaPrice Price    `json:"ema_price"`
	Metadata Metadata `json:"metadata"`
}

// HermesResponse is the full decoded Hermes response: a base64 VAA
// update blob plus the parsed price it encodes.
type HermesResponse struct {
	Binary Binary   `json:"binary"`
	Parsed []Parsed `json:"parsed"`
}

// UpdatePriceFeeds is the payload for an oracle contract's
// update_price_feeds execute variant.
type UpdatePriceFeeds struct {
	Data []string `json:"data"`
}

// UpdatePriceFeedsMsg wraps UpdatePriceFeeds as the execute message the
// oracle contract expects.
type UpdatePriceFeedsMsg struct {
	UpdatePriceFeeds UpdatePriceFeeds `json:"update_price_feeds"`
}

// priceQueryMsg is the smart-query this adapter sends the oracle
// contract to read a previously-pushed price, mirroring
// original_source/packages/types's OracleQueryMsg::Price.
type priceQueryMsg struct {
	Price priceQuery `json:"price"`
}

type priceQuery struct {
	Denom string `json:"denom"`
}

// onChainPriceResponse is the oracle contract's answer to priceQueryMsg,
// mirroring original_source/packages/types's PriceResponse plus the
// Pyth-specific confidence oracle.ValidatePrice checks. CodeID is decoded
// but not used: Adapter.Price takes the code id from the chain's
// ContractInfo instead.
type onChainPriceResponse struct {
	Denom      string `json:"denom"`
	Price      string `json:"price"`
	UpdatedAt  uint64 `json:"updated_at"`
	Confidence string `json:"confidence,omitempty"`
	CodeID     uint64 `json:"code_id"`
}
