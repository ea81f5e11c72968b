// Tests for scheme-tagged public keys: hex parsing, length checks per
// scheme, copies and JSON text encoding.
package validatorpk

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

const (
	secpRaw = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	edRaw   = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
)

// TestFromString verifies that a hexadecimal string (with or without 0x prefix)
// can be parsed into a PubKey.
func TestFromString(t *testing.T) {
	require := require.New(t)

	exp := PubKey{
		Type: Types.Secp256k1,
		Raw:  common.FromHex(secpRaw),
	}

	// Case 1: no prefix.
	{
		got, err := FromString("c0" + secpRaw)
		require.NoError(err)
		require.Equal(exp, got)
	}

	// Case 2: 0x prefix.
	{
		got, err := FromString("0xc0" + secpRaw)
		require.NoError(err)
		require.Equal(exp, got)
	}

	// Case 3: empty string.
	{
		_, err := FromString("")
		require.True(errors.Is(err, ErrEmpty))
	}

	// Case 4: "0x" only.
	{
		_, err := FromString("0x")
		require.Error(err)
	}

	// Case 5: invalid hex characters.
	{
		_, err := FromString("-")
		require.Error(err)
	}

	// Case 6: unknown scheme byte.
	{
		_, err := FromString("0x01" + edRaw)
		require.True(errors.Is(err, ErrUnknownType))
	}

	// Case 7: raw length does not match the scheme.
	{
		_, err := FromString("0xb0" + secpRaw)
		require.Error(err)
	}
}

func TestString(t *testing.T) {
	pk := PubKey{
		Type: Types.Ed25519,
		Raw:  common.FromHex(edRaw),
	}
	require.Equal(t, "0xb0"+edRaw, pk.String())
}

func TestEmpty(t *testing.T) {
	require := require.New(t)

	require.True(PubKey{}.Empty(), "Zero value PubKey should be empty")
	require.False(PubKey{Type: Types.Sr25519, Raw: []byte{0x01}}.Empty())
}

func TestBytes(t *testing.T) {
	pk := PubKey{
		Type: 0x01,
		Raw:  []byte{0x02, 0x03},
	}
	require.Equal(t, []byte{0x01, 0x02, 0x03}, pk.Bytes())
}

func TestCopy(t *testing.T) {
	require := require.New(t)

	original := PubKey{
		Type: Types.Ed25519,
		Raw:  []byte{0xAA, 0xBB},
	}
	copyPk := original.Copy()
	require.Equal(original, copyPk)
	require.True(original.Equal(copyPk))

	copyPk.Raw[0] = 0xFF

	require.Equal(uint8(0xAA), original.Raw[0], "Original PubKey was modified by copy")
	require.False(original.Equal(copyPk))
}

func TestFromBytes(t *testing.T) {
	require := require.New(t)

	input := append([]byte{Types.Sr25519}, common.FromHex(edRaw)...)
	pk, err := FromBytes(input)
	require.NoError(err)
	require.Equal(Types.Sr25519, pk.Type)
	require.Equal(common.FromHex(edRaw), pk.Raw)

	// the decoded key must not alias the input buffer
	input[1] ^= 0xff
	require.Equal(common.FromHex(edRaw), pk.Raw)

	_, err = FromBytes([]byte{})
	require.Error(err)
}

func TestSchemeName(t *testing.T) {
	tests := []struct {
		scheme uint8
		want   string
	}{
		{Types.Sr25519, "sr25519"},
		{Types.Ed25519, "ed25519"},
		{Types.Secp256k1, "secp256k1"},
		{0x07, "unknown(0x07)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, SchemeName(tt.scheme))
		})
	}
}

// TestMarshalUnmarshal verifies JSON encoding and decoding via MarshalText/UnmarshalText.
func TestMarshalUnmarshal(t *testing.T) {
	require := require.New(t)

	original := PubKey{
		Type: Types.Ed25519,
		Raw:  common.FromHex(edRaw),
	}

	data, err := json.Marshal(original)
	require.NoError(err)
	require.Equal(`"`+original.String()+`"`, string(data))

	var decoded PubKey
	require.NoError(json.Unmarshal(data, &decoded))
	require.Equal(original, decoded)
}
