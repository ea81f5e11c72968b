package genesis

import (
	"fmt"
	"math/big"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-storage-chain/evmcore"
	"github.com/rony4d/go-storage-chain/inter/validatorpk"
)

const (
	// TokenDecimals is the number of decimal places of the native token.
	TokenDecimals = 18
	// TokenSymbol is the ticker of the native token.
	TokenSymbol = "STOR"

	// endowmentTokens is the whole-token size of the genesis endowment pool.
	endowmentTokens = 2_500_000_000
)

// STOR returns one token in base units.
func STOR() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(TokenDecimals), nil)
}

// TotalEndowment returns the endowment pool in base units.
func TotalEndowment() *big.Int {
	return new(big.Int).Mul(big.NewInt(endowmentTokens), STOR())
}

// EndowmentPerAccount is the balance of every funded address: the pool
// divided by the number of authorities, truncated. It deliberately ignores
// how many addresses are funded. Zero authorities is a caller bug and panics.
func EndowmentPerAccount(authorities int) *big.Int {
	if authorities <= 0 {
		panic(fmt.Sprintf("genesis: endowment needs at least one authority, got %d", authorities))
	}
	return new(big.Int).Quo(TotalEndowment(), big.NewInt(int64(authorities)))
}

type options struct {
	finalityFromAuthorities bool
}

// Option tunes Build.
type Option func(*options)

// WithFinalityFromAuthorities fills the finality voter set from the
// authorities, weight 1 each. Without it the set stays empty.
func WithFinalityFromAuthorities() Option {
	return func(o *options) {
		o.finalityFromAuthorities = true
	}
}

// Build assembles the genesis document.
//
// code must be non-empty, otherwise ErrMissingRuntimeArtifact is returned.
// authorities must be non-empty; an empty list is a precondition violation
// and panics. funded addresses are taken as already validated. Authority
// order is preserved in the proposer, finality and session slots.
func Build(code []byte, authorities []Authority, admin common.Address, funded []common.Address, opts ...Option) (*Document, error) {
	if len(code) == 0 {
		return nil, ErrMissingRuntimeArtifact
	}
	if len(authorities) == 0 {
		panic("genesis: at least one authority is required")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	doc := &Document{
		System: SystemConfig{Code: common.CopyBytes(code)},
		Balances: BalancesConfig{
			Balances: make([]Endowment, 0, len(funded)),
		},
		Proposers: ProposerConfig{
			Authorities: make([]validatorpk.PubKey, 0, len(authorities)),
		},
		Finality: FinalityConfig{
			Authorities: []FinalityAuthority{},
		},
		Session: SessionConfig{
			Keys: make([]SessionKey, 0, len(authorities)),
		},
		EVM: EVMConfig{
			Accounts: evmcore.PrefundedAlloc(),
		},
	}

	if len(funded) > 0 {
		share := EndowmentPerAccount(len(authorities))
		for _, addr := range funded {
			doc.Balances.Balances = append(doc.Balances.Balances, Endowment{
				Address: addr,
				Balance: new(big.Int).Set(share),
			})
		}
	}

	for i, a := range authorities {
		doc.Proposers.Authorities = append(doc.Proposers.Authorities, a.Proposer.Copy())

		if o.finalityFromAuthorities {
			doc.Finality.Authorities = append(doc.Finality.Authorities, FinalityAuthority{
				ID:     idx.ValidatorID(i + 1),
				Key:    a.Voter.Copy(),
				Weight: 1,
			})
		}

		doc.Session.Keys = append(doc.Session.Keys, SessionKey{
			Account:   a.Address,
			Validator: a.Address,
			Keys:      a.SessionKeys(),
		})
	}

	root := admin
	doc.Admin.Key = &root

	return doc, nil
}
