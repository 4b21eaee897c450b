package types

import "encoding/binary"

const (
	// ModuleName defines the module name
	ModuleName = "compute"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for compute
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	ParamsKey            = []byte{0x01}
	NextComputationIDKey = []byte{0x02}

	PendingComputationKeyPrefix = []byte{0x10}
	IdentityIndexKeyPrefix      = []byte{0x11}
	EvaluatorKeyPrefix          = []byte{0x12}
)

// PendingComputationKey returns the store key for a pending computation.
func PendingComputationKey(id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return append(PendingComputationKeyPrefix, bz...)
}

// IdentityIndexKey returns the store key of the identity dedup index entry
// for a given identity hash.
func IdentityIndexKey(identityHash []byte) []byte {
	return append(IdentityIndexKeyPrefix, identityHash...)
}

// EvaluatorKey returns the store key for an evaluator registry entry.
func EvaluatorKey(address string) []byte {
	return append(EvaluatorKeyPrefix, []byte(address)...)
}
