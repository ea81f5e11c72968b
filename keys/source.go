package keys

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-storage-chain/inter/validatorpk"
)

// AddressKind tells where an account address comes from.
type AddressKind uint8

const (
	// LiteralAddress is a fixed hex address taken as-is.
	LiteralAddress AddressKind = iota
	// DerivedAddress is computed from the secp256k1 key of a seed.
	DerivedAddress
)

func (k AddressKind) String() string {
	switch k {
	case LiteralAddress:
		return "literal"
	case DerivedAddress:
		return "derived"
	}
	return fmt.Sprintf("AddressKind(%d)", uint8(k))
}

// AddressSource is an explicit recipe for an account address. Every
// configuration states which kind it uses instead of mixing the two silently.
type AddressSource struct {
	Kind    AddressKind
	Literal string // hex, set for LiteralAddress
	Seed    string // secret URI, set for DerivedAddress
}

// Literal returns a source that uses hex as the address verbatim.
func Literal(hex string) AddressSource {
	return AddressSource{Kind: LiteralAddress, Literal: hex}
}

// Derived returns a source that derives the address from the secp256k1 key of seed.
func Derived(seed string) AddressSource {
	return AddressSource{Kind: DerivedAddress, Seed: seed}
}

// Resolve computes the address.
func (s AddressSource) Resolve() (common.Address, error) {
	switch s.Kind {
	case LiteralAddress:
		if !common.IsHexAddress(s.Literal) {
			return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s.Literal)
		}
		return common.HexToAddress(s.Literal), nil
	case DerivedAddress:
		pk, err := DeriveKey(s.Seed, validatorpk.Types.Secp256k1)
		if err != nil {
			return common.Address{}, err
		}
		return AddressOf(pk)
	}
	return common.Address{}, fmt.Errorf("%w: unknown source %s", ErrInvalidAddress, s.Kind)
}

// MustResolve is Resolve for configuration constants; it panics on error.
func (s AddressSource) MustResolve() common.Address {
	addr, err := s.Resolve()
	if err != nil {
		panic(err)
	}
	return addr
}

// String never prints the seed of a derived source.
func (s AddressSource) String() string {
	if s.Kind == LiteralAddress {
		return "literal:" + s.Literal
	}
	return s.Kind.String()
}
