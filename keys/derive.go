// Package keys derives authority keys and account addresses.
//
// Keys come from secret URIs such as "//Alice" or
// "<mnemonic>//stash///password". Derivation is deterministic: the same
// URI and scheme always give the same key, and nothing here reads from a
// random source. Only public halves leave the package.
package keys

import (
	"crypto/ed25519"
	"crypto/sha512"
	"fmt"
	"math/big"
	"strings"

	schnorrkel "github.com/ChainSafe/go-schnorrkel"
	bip39 "github.com/cosmos/go-bip39"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/pbkdf2"

	"github.com/rony4d/go-storage-chain/inter/validatorpk"
)

// hdkdTags are the domain separators of hard derivation for the schemes
// derived from the secret bytes directly. sr25519 derives through schnorrkel.
var hdkdTags = map[uint8]string{
	validatorpk.Types.Ed25519:   "Ed25519HDKD",
	validatorpk.Types.Secp256k1: "Secp256k1HDKD",
}

// DeriveKey returns the public key of the given scheme for a secret URI.
// Errors wrap ErrInvalidSeed.
func DeriveKey(seed string, scheme uint8) (validatorpk.PubKey, error) {
	switch scheme {
	case validatorpk.Types.Ed25519:
		secret, err := deriveSecret(seed, scheme)
		if err != nil {
			return validatorpk.PubKey{}, err
		}
		pub := ed25519.NewKeyFromSeed(secret[:]).Public().(ed25519.PublicKey)
		return validatorpk.PubKey{Type: scheme, Raw: []byte(pub)}, nil

	case validatorpk.Types.Secp256k1:
		secret, err := deriveSecret(seed, scheme)
		if err != nil {
			return validatorpk.PubKey{}, err
		}
		priv, err := crypto.ToECDSA(secret[:])
		if err != nil {
			return validatorpk.PubKey{}, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
		}
		return validatorpk.PubKey{Type: scheme, Raw: crypto.CompressPubkey(&priv.PublicKey)}, nil

	case validatorpk.Types.Sr25519:
		msk, err := deriveMiniSecret(seed)
		if err != nil {
			return validatorpk.PubKey{}, err
		}
		pub := msk.Public().Encode()
		return validatorpk.PubKey{Type: scheme, Raw: pub[:]}, nil
	}
	return validatorpk.PubKey{}, fmt.Errorf("%w: unsupported scheme %s", ErrInvalidSeed, validatorpk.SchemeName(scheme))
}

// MustDeriveKey is DeriveKey for configuration constants. A bad seed there
// is a programming error, so it panics.
func MustDeriveKey(seed string, scheme uint8) validatorpk.PubKey {
	pk, err := DeriveKey(seed, scheme)
	if err != nil {
		panic(err)
	}
	return pk
}

// parseRoot parses a secret URI and resolves its root secret.
func parseRoot(seed string) (secretURI, [32]byte, error) {
	if seed == "" {
		return secretURI{}, [32]byte{}, fmt.Errorf("%w: empty seed", ErrInvalidSeed)
	}
	uri, err := parseSecretURI(seed)
	if err != nil {
		return secretURI{}, [32]byte{}, err
	}
	secret, err := rootSecret(uri.phrase, uri.password)
	if err != nil {
		return secretURI{}, [32]byte{}, err
	}
	return uri, secret, nil
}

// deriveSecret walks the hard junctions of a URI over the raw secret bytes.
func deriveSecret(seed string, scheme uint8) ([32]byte, error) {
	tag := hdkdTags[scheme]
	uri, secret, err := parseRoot(seed)
	if err != nil {
		return secret, err
	}
	for _, j := range uri.path {
		if !j.hard {
			return secret, fmt.Errorf("%w: soft derivation is not supported for %s", ErrInvalidSeed, validatorpk.SchemeName(scheme))
		}
		secret = hardDerive(tag, secret, j.chainCode)
	}
	return secret, nil
}

// deriveMiniSecret walks the hard junctions of a URI with schnorrkel's
// HDKD transcript, starting from the root secret as a mini secret key.
func deriveMiniSecret(seed string) (*schnorrkel.MiniSecretKey, error) {
	uri, secret, err := parseRoot(seed)
	if err != nil {
		return nil, err
	}
	msk, err := schnorrkel.NewMiniSecretKeyFromRaw(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	for _, j := range uri.path {
		if !j.hard {
			return nil, fmt.Errorf("%w: soft derivation is not supported for %s", ErrInvalidSeed, validatorpk.SchemeName(validatorpk.Types.Sr25519))
		}
		msk, _, err = msk.HardDeriveMiniSecretKey([]byte{}, j.chainCode)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
		}
	}
	return msk, nil
}

// rootSecret turns the phrase into 32 secret bytes. A 0x-prefixed phrase is
// taken as the raw secret and the password is ignored; anything else must be
// a BIP39 mnemonic whose entropy is stretched with PBKDF2-HMAC-SHA512.
func rootSecret(phrase, password string) ([32]byte, error) {
	var secret [32]byte

	if strings.HasPrefix(phrase, "0x") {
		raw, err := hexutil.Decode(phrase)
		if err != nil || len(raw) != len(secret) {
			return secret, fmt.Errorf("%w: hex seed must be %d bytes", ErrInvalidSeed, len(secret))
		}
		copy(secret[:], raw)
		return secret, nil
	}

	entropy, err := mnemonicEntropy(phrase)
	if err != nil {
		return secret, err
	}
	stretched := pbkdf2.Key(entropy, []byte("mnemonic"+password), 2048, 64, sha512.New)
	copy(secret[:], stretched[:32])
	return secret, nil
}

// mnemonicEntropy returns the BIP39 entropy of a mnemonic. The word indices
// encode entropy followed by a checksum of words/3 bits.
func mnemonicEntropy(phrase string) ([]byte, error) {
	if !bip39.IsMnemonicValid(phrase) {
		return nil, fmt.Errorf("%w: invalid mnemonic", ErrInvalidSeed)
	}
	full, err := bip39.MnemonicToByteArray(phrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	words := len(strings.Split(phrase, " "))
	n := new(big.Int).SetBytes(full)
	n.Rsh(n, uint(words/3))
	return n.FillBytes(make([]byte, words*4/3)), nil
}
