// Package oracle defines the price-query interface every market and the
// factory consume, the tagged union of oracle variants with their
// validation rules, and the single shared response validator.
//
// The three named variants (Generic, Pyth, Chainlink) expose exactly two
// common behaviors, MaxStalenessSeconds and ExpectedCodeID, plus
// Pyth-only confidence handling. This is modeled as a tagged sum type
// with small associated config fields (a Kind discriminant plus
// per-variant fields), the same shape as the teacher's
// pkg/contracts/mars/health/types.go AccountKind, not a class hierarchy.
package oracle

import (
	sdkmath "cosmossdk.io/math"
)

// Kind discriminates the oracle variants.
type Kind string

const (
	KindGeneric   Kind = "generic"
	KindPyth      Kind = "pyth"
	KindChainlink Kind = "chainlink"
)

// Type is the tagged union of oracle variants and their validation
// rules. Only the fields relevant to Kind are populated.
type Type struct {
	Kind               Kind
	ExpectedCodeID     *uint64            // optional for Generic, required for Pyth/Chainlink
	MaxStalenessSecs   uint64
	MaxConfidenceRatio sdkmath.LegacyDec // Pyth only
}

// NewGeneric builds a Generic oracle type. expectedCodeID is optional.
func NewGeneric(expectedCodeID *uint64, maxStalenessSecs uint64) Type {
	return Type{Kind: KindGeneric, ExpectedCodeID: expectedCodeID, MaxStalenessSecs: maxStalenessSecs}
}

// NewPyth builds a Pyth adapter oracle type.
func NewPyth(expectedCodeID uint64, maxStalenessSecs uint64, maxConfidenceRatio sdkmath.LegacyDec) Type {
	return Type{
		Kind:               KindPyth,
		ExpectedCodeID:     &expectedCodeID,
		MaxStalenessSecs:   maxStalenessSecs,
		MaxConfidenceRatio: maxConfidenceRatio,
	}
}

// NewChainlink builds a Chainlink adapter oracle type.
func NewChainlink(expectedCodeID uint64, maxStalenessSecs uint64) Type {
	return Type{Kind: KindChainlink, ExpectedCodeID: &expectedCodeID, MaxStalenessSecs: maxStalenessSecs}
}

// DefaultGeneric matches the original's Default impl: Generic, no
// pinned code id, 300 second staleness bound.
func DefaultGeneric() Type {
	return NewGeneric(nil, 300)
}

// MaxStalenessSeconds returns the maximum age a price response may have.
func (t Type) MaxStalenessSeconds() uint64 { return t.MaxStalenessSecs }

// ExpectedCodeIDValue returns the pinned code id, if any is required for
// this variant.
func (t Type) ExpectedCodeIDValue() *uint64 { return t.ExpectedCodeID }

// Config pairs a validated oracle contract address with its Type.
type Config struct {
	Address string
	Type    Type
}

// Query is the single request the oracle query contract answers.
type Query struct {
	Denom string
}

// PriceResponse is the oracle's answer to a Query.
type PriceResponse struct {
	Denom     string
	Price     sdkmath.LegacyDec
	UpdatedAt uint64
}

// Confidence optionally accompanies a PriceResponse for confidence-aware
// adapters (Pyth). A nil Confidence skips the confidence check.
type Confidence struct {
	Value sdkmath.LegacyDec
}

// Querier is implemented by every concrete oracle client (the in-process
// Generic test double, the Pyth adapter in pkg/oracle/pyth, ...). It is
// the one interface standing in for the out-of-scope host's
// cross-contract call machinery.
type Querier interface {
	Price(denom string) (PriceResponse, *Confidence, *uint64, error) // price, optional confidence, optional reporting code id
}
