package factory

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// ComputeMarketID derives a market's deterministic identifier as
// H(collateral_denom || debt_denom || curator || le_u64(salt.unwrap_or(0))),
// hex-encoded, mirroring original_source/contracts/factory/src/execute.rs's
// compute_market_id. A nil salt hashes identically to a salt of 0, so
// salt=None and salt=Some(0) collide onto the same market id.
func ComputeMarketID(collateralDenom, debtDenom, curator string, salt *uint64) string {
	h := sha256.New()
	h.Write([]byte(collateralDenom))
	h.Write([]byte(debtDenom))
	h.Write([]byte(curator))

	var saltValue uint64
	if salt != nil {
		saltValue = *salt
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], saltValue)
	h.Write(buf[:])

	return hex.EncodeToString(h.Sum(nil))
}
