package keys

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-storage-chain/inter/validatorpk"
)

const (
	// secp256k1 generator point G, i.e. the public key of private key 1
	generatorX = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	generatorY = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"

	// published Ethereum address of private key 1
	generatorAddress = "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"

	// published development key pair (mnemonic DevPhrase, m/44'/60'/0'/0/0)
	alithPrivateKey = "0x5fb92d6e98884f76de468fa3f6278f8807c48bebc13595d45af5bdc4da702133"
)

func TestDeriveAddressKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		pub  []byte
	}{
		{"uncompressed", common.FromHex("04" + generatorX + generatorY)},
		{"compressed", common.FromHex("02" + generatorX)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := DeriveAddress(tt.pub)
			require.NoError(t, err)
			require.Len(t, addr.Bytes(), 20)
			require.Equal(t, common.HexToAddress(generatorAddress), addr)
		})
	}
}

// TestDeriveAddressFromSeed runs the full path from a raw secret through the
// compressed key to the account address.
func TestDeriveAddressFromSeed(t *testing.T) {
	require := require.New(t)

	pk, err := DeriveKey(alithPrivateKey, validatorpk.Types.Secp256k1)
	require.NoError(err)

	addr, err := AddressOf(pk)
	require.NoError(err)
	require.Equal(common.HexToAddress(DevAuthority), addr)
}

func TestDeriveAddressDeterministic(t *testing.T) {
	for _, seed := range []string{"//Alice", "//Bob", "//Charlie"} {
		pk := MustDeriveKey(seed, validatorpk.Types.Secp256k1)

		a, err := AddressOf(pk)
		require.NoError(t, err)
		b, err := DeriveAddress(pk.Raw)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestDeriveAddressInvalid(t *testing.T) {
	tests := []struct {
		name string
		pub  []byte
	}{
		{"empty", nil},
		{"wrong length", make([]byte, 20)},
		{"bad prefix", common.FromHex("05" + generatorX)},
		{"not on curve", append([]byte{0x04}, make([]byte, 64)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveAddress(tt.pub)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidPublicKey), "got %v", err)
		})
	}
}

func TestAddressOfRejectsOtherSchemes(t *testing.T) {
	pk := MustDeriveKey("//Alice", validatorpk.Types.Ed25519)
	_, err := AddressOf(pk)
	require.True(t, errors.Is(err, ErrInvalidPublicKey))
}
