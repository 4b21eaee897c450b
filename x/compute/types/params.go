package types

import "fmt"

// DefaultMaxPayloadBytes caps queued computation payloads.
const DefaultMaxPayloadBytes uint32 = 8192

// Params defines the parameters for the compute module.
type Params struct {
	MaxPayloadBytes uint32 `json:"max_payload_bytes"`
}

// DefaultParams returns the default compute module parameters.
func DefaultParams() Params {
	return Params{
		MaxPayloadBytes: DefaultMaxPayloadBytes,
	}
}

// Validate performs basic validation of compute module parameters.
func (p Params) Validate() error {
	if p.MaxPayloadBytes == 0 {
		return fmt.Errorf("max payload bytes must be positive")
	}
	return nil
}
