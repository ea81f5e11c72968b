package keys

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/rony4d/go-storage-chain/inter/validatorpk"
)

// DeriveAddress returns the Ethereum address of a secp256k1 public key given
// in compressed (33 bytes) or uncompressed (65 bytes) form: the low 20 bytes
// of Keccak-256 over the 64 coordinate bytes of the uncompressed point.
// Existing accounts depend on this exact rule.
func DeriveAddress(pub []byte) (common.Address, error) {
	var (
		key *ecdsa.PublicKey
		err error
	)
	switch len(pub) {
	case 33:
		key, err = crypto.DecompressPubkey(pub)
	case 65:
		key, err = crypto.UnmarshalPubkey(pub)
	default:
		err = fmt.Errorf("unexpected length %d", len(pub))
	}
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	uncompressed := crypto.FromECDSAPub(key) // 0x04 ‖ X ‖ Y
	digest := crypto.Keccak256(uncompressed[1:])
	return common.BytesToAddress(digest[12:]), nil
}

// AddressOf derives the address of a Secp256k1-tagged key.
func AddressOf(pk validatorpk.PubKey) (common.Address, error) {
	if pk.Type != validatorpk.Types.Secp256k1 {
		return common.Address{}, fmt.Errorf("%w: %s keys have no account address", ErrInvalidPublicKey, validatorpk.SchemeName(pk.Type))
	}
	return DeriveAddress(pk.Raw)
}
