package keys

import "errors"

var (
	// ErrInvalidSeed is returned when a secret URI does not decode to a key
	// under the requested scheme.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrInvalidPublicKey is returned when public key bytes are not a valid
	// secp256k1 curve point.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidAddress is returned when a literal address is not 20 bytes of hex.
	ErrInvalidAddress = errors.New("invalid address")
)
