// Package validatorpk provides the scheme-tagged public keys an authority
// registers at genesis. Block proposal and finality voting use different
// signature schemes, so every key carries its scheme byte next to the raw
// bytes and the pair travels together through the genesis document.

package validatorpk

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// PubKey represents an authority public key.
type PubKey struct {
	// Type identifies the signature scheme (see Types).
	Type uint8
	// Raw contains the encoded public key bytes of that scheme.
	Raw []byte
}

// Types enumerates the supported key schemes.
var Types = struct {
	Sr25519   uint8
	Ed25519   uint8
	Secp256k1 uint8
}{
	// Sr25519 keys sign block proposals (slot authoring).
	Sr25519: 0xa0,
	// Ed25519 keys sign finality votes.
	Ed25519: 0xb0,
	// Secp256k1 is the Ethereum account curve; keys are stored compressed.
	Secp256k1: 0xc0,
}

// Proposer and Voter name the key roles an authority holds.
var (
	Proposer = Types.Sr25519
	Voter    = Types.Ed25519
)

var (
	// ErrEmpty is returned when decoding an empty key.
	ErrEmpty = errors.New("empty pubkey")
	// ErrUnknownType is returned when the type byte names no known scheme.
	ErrUnknownType = errors.New("unknown pubkey type")
)

// RawSize returns the expected raw key length for a scheme, or 0 if the
// scheme is unknown.
func RawSize(t uint8) int {
	switch t {
	case Types.Sr25519, Types.Ed25519:
		return 32
	case Types.Secp256k1:
		return 33
	}
	return 0
}

// SchemeName returns a human readable scheme name.
func SchemeName(t uint8) string {
	switch t {
	case Types.Sr25519:
		return "sr25519"
	case Types.Ed25519:
		return "ed25519"
	case Types.Secp256k1:
		return "secp256k1"
	}
	return fmt.Sprintf("unknown(0x%02x)", t)
}

// Empty checks if the public key is uninitialized.
func (pk PubKey) Empty() bool {
	return len(pk.Raw) == 0 && pk.Type == 0
}

// String returns the 0x-prefixed hex of Type followed by Raw.
func (pk PubKey) String() string {
	return "0x" + common.Bytes2Hex(pk.Bytes())
}

// Bytes returns [Type] + Raw.
func (pk PubKey) Bytes() []byte {
	return append([]byte{pk.Type}, pk.Raw...)
}

// Copy returns a deep copy; Raw is not shared with the receiver.
func (pk PubKey) Copy() PubKey {
	return PubKey{
		Type: pk.Type,
		Raw:  common.CopyBytes(pk.Raw),
	}
}

// Equal reports whether both keys have the same scheme and bytes.
func (pk PubKey) Equal(other PubKey) bool {
	return pk.Type == other.Type && string(pk.Raw) == string(other.Raw)
}

// FromString parses a hex string (with or without "0x" prefix) into a PubKey.
func FromString(str string) (PubKey, error) {
	return FromBytes(common.FromHex(str))
}

// FromBytes reconstructs a PubKey from [Type] + Raw. The scheme must be known
// and the raw length must match it.
func FromBytes(b []byte) (PubKey, error) {
	if len(b) == 0 {
		return PubKey{}, ErrEmpty
	}
	size := RawSize(b[0])
	if size == 0 {
		return PubKey{}, fmt.Errorf("%w: 0x%02x", ErrUnknownType, b[0])
	}
	if len(b)-1 != size {
		return PubKey{}, fmt.Errorf("%s pubkey must be %d bytes, got %d", SchemeName(b[0]), size, len(b)-1)
	}
	return PubKey{b[0], common.CopyBytes(b[1:])}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (pk PubKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PubKey) UnmarshalText(input []byte) error {
	res, err := FromString(string(input))
	if err != nil {
		return err
	}
	*pk = res
	return nil
}
