package genesis

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-storage-chain/evmcore"
	"github.com/rony4d/go-storage-chain/keys"
)

func testDocument(t *testing.T) *Document {
	doc, err := Build(testCode, testAuthorities(t, 2), common.HexToAddress(keys.Alith),
		addrs(keys.Alith, keys.Baltathar), WithFinalityFromAuthorities())
	require.NoError(t, err)
	return doc
}

func TestDocumentCopy(t *testing.T) {
	require := require.New(t)

	doc := testDocument(t)
	cp := doc.Copy()
	require.Equal(doc, cp)

	cp.System.Code[0] = 0xff
	cp.Balances.Balances[0].Balance.SetInt64(1)
	cp.Proposers.Authorities[0].Raw[0] ^= 0xff
	cp.Session.Keys[1].Keys.Voter.Raw[0] ^= 0xff
	*cp.Admin.Key = common.Address{}
	cp.EVM.Accounts[common.HexToAddress(keys.Ethan)] = evmcore.GenesisAccount{Balance: big.NewInt(1)}

	require.Equal(testDocument(t), doc)
	require.NotEqual(doc, cp)
}

func TestDocumentHash(t *testing.T) {
	require := require.New(t)

	doc := testDocument(t)
	h, err := doc.Hash()
	require.NoError(err)
	require.NotEqual(common.Hash{}, h)

	other := doc.Copy()
	other.Balances.Balances = other.Balances.Balances[:1]
	ho, err := other.Hash()
	require.NoError(err)
	require.NotEqual(h, ho)

	other = doc.Copy()
	other.EVM.Accounts[common.HexToAddress(keys.EVMPrefunded)] = evmcore.GenesisAccount{
		Balance: big.NewInt(0),
		Storage: map[common.Hash]common.Hash{{1}: {2}},
	}
	ho, err = other.Hash()
	require.NoError(err)
	require.NotEqual(h, ho)
}

func TestDocumentValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Document)
		want   error
	}{
		{"no code", func(d *Document) { d.System.Code = nil }, ErrMissingRuntimeArtifact},
		{"no admin", func(d *Document) { d.Admin.Key = nil }, ErrInconsistent},
		{"missing session", func(d *Document) { d.Session.Keys = d.Session.Keys[:1] }, ErrInconsistent},
		{"owner differs", func(d *Document) { d.Session.Keys[0].Account = common.Address{1} }, ErrInconsistent},
		{"proposers reordered", func(d *Document) {
			p := d.Proposers.Authorities
			p[0], p[1] = p[1], p[0]
		}, ErrInconsistent},
		{"partial finality", func(d *Document) { d.Finality.Authorities = d.Finality.Authorities[:1] }, ErrInconsistent},
		{"unequal endowment", func(d *Document) { d.Balances.Balances[1].Balance = big.NewInt(1) }, ErrInconsistent},
	}

	require.NoError(t, testDocument(t).Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument(t)
			tt.mutate(doc)
			err := doc.Validate()
			require.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestDocumentEVMStateRoot(t *testing.T) {
	root, err := testDocument(t).EVMStateRoot()
	require.NoError(t, err)
	// the only account is empty and is not materialized in the trie
	require.Equal(t, types.EmptyRootHash, root)
}

func TestDocumentJSON(t *testing.T) {
	require := require.New(t)

	data, err := json.Marshal(testDocument(t))
	require.NoError(err)

	var raw map[string]json.RawMessage
	require.NoError(json.Unmarshal(data, &raw))
	for _, slot := range []string{"system", "balances", "proposers", "finality", "admin",
		"transactionPayment", "evm", "session", "ledger", "baseFee"} {
		require.Contains(raw, slot)
	}

	var system struct {
		Code string `json:"code"`
	}
	require.NoError(json.Unmarshal(raw["system"], &system))
	require.Equal("0x0061736d01000000", system.Code)
}
