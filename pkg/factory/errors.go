package factory

import (
	"fmt"

	cosmoserrors "cosmossdk.io/errors"
)

const codespace = "factory"

var rootErr = cosmoserrors.Register(codespace, 1, "factory error")

// Kind enumerates the non-overlapping factory error categories,
// mirroring original_source/contracts/factory/src/error.rs.
type Kind string

const (
	KindUnauthorized            Kind = "unauthorized"
	KindMarketAlreadyExists     Kind = "market_already_exists"
	KindMarketNotFound          Kind = "market_not_found"
	KindInsufficientCreationFee Kind = "insufficient_creation_fee"
	KindSameDenom               Kind = "same_denom"
	KindInvalidOracle           Kind = "invalid_oracle"
	KindNoPendingOwnership      Kind = "no_pending_ownership"
	KindNotPendingOwner         Kind = "not_pending_owner"
	KindInvalidParameter        Kind = "invalid_parameter"
	KindCuratorFeeExceedsMax    Kind = "curator_fee_exceeds_max"
	KindMarketIDMismatch        Kind = "market_id_mismatch"
	KindNoPendingMarketSalt     Kind = "no_pending_market_salt"
)

// Error is the structured error type every factory operation returns on
// failure.
type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string]string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

func (e *Error) Unwrap() error { return rootErr }

func newError(kind Kind, msg string, fields map[string]string) *Error {
	return &Error{Kind: kind, Msg: msg, Fields: fields}
}

func NewUnauthorizedError() *Error {
	return newError(KindUnauthorized, "unauthorized", nil)
}

func NewMarketAlreadyExistsError(marketID string) *Error {
	return newError(KindMarketAlreadyExists, "market already exists", map[string]string{"market_id": marketID})
}

func NewMarketNotFoundError(marketID string) *Error {
	return newError(KindMarketNotFound, "market not found", map[string]string{"market_id": marketID})
}

func NewInsufficientCreationFeeError(required, sent string) *Error {
	return newError(KindInsufficientCreationFee, "insufficient creation fee", map[string]string{
		"required": required, "sent": sent,
	})
}

func NewSameDenomError() *Error {
	return newError(KindSameDenom, "collateral and debt must be different", nil)
}

func NewInvalidOracleError(denom string) *Error {
	return newError(KindInvalidOracle, "failed to query price", map[string]string{"denom": denom})
}

func NewNoPendingOwnershipError() *Error {
	return newError(KindNoPendingOwnership, "pending ownership transfer not found", nil)
}

func NewNotPendingOwnerError() *Error {
	return newError(KindNotPendingOwner, "not the pending owner", nil)
}

func NewInvalidParameterError(reason string) *Error {
	return newError(KindInvalidParameter, reason, nil)
}

func NewCuratorFeeExceedsMaxError() *Error {
	return newError(KindCuratorFeeExceedsMax, "curator fee exceeds maximum of 25%", nil)
}

func NewMarketIDMismatchError(expected, got string) *Error {
	return newError(KindMarketIDMismatch, "market id does not match the one computed at creation", map[string]string{
		"expected": expected, "got": got,
	})
}

func NewNoPendingMarketSaltError() *Error {
	return newError(KindNoPendingMarketSalt, "no pending market salt - internal error", nil)
}
