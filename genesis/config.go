package genesis

// Package genesis assembles the initial state document of the storage
// chain. The document is the complete ledger state at block zero: the
// runtime code, endowed balances, the authority set with its session keys,
// the administrator account and the EVM accounts.
//
// Key concepts:
//   - Authority: an account address plus the two consensus keys it holds
//     (block proposer and finality voter)
//   - Endowment: a balance granted to an address at genesis
//   - Document: the assembled state, one slot per runtime module
//
// Usage:
//   alice, _ := genesis.NewAuthority(keys.Literal(keys.Alith), "//Alice")
//   doc, err := genesis.Build(code, []genesis.Authority{alice}, admin, funded)
//
// Documents are built once at startup from constants and treated as
// read-only afterwards; Copy returns an independent value when one is needed.

import (
	"math/big"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rony4d/go-storage-chain/evmcore"
	"github.com/rony4d/go-storage-chain/inter/validatorpk"
	"github.com/rony4d/go-storage-chain/keys"
)

// Authority is a participant entitled to propose and finalize blocks.
// Its address is independent of its consensus keys; AddressSource records
// where the address came from.
type Authority struct {
	Address       common.Address
	AddressSource keys.AddressSource
	Proposer      validatorpk.PubKey // sr25519 slot key
	Voter         validatorpk.PubKey // ed25519 finality key
}

// NewAuthority resolves the address from source and derives both consensus
// keys from seed.
func NewAuthority(source keys.AddressSource, seed string) (Authority, error) {
	addr, err := source.Resolve()
	if err != nil {
		return Authority{}, err
	}
	proposer, err := keys.DeriveKey(seed, validatorpk.Proposer)
	if err != nil {
		return Authority{}, err
	}
	voter, err := keys.DeriveKey(seed, validatorpk.Voter)
	if err != nil {
		return Authority{}, err
	}
	return Authority{
		Address:       addr,
		AddressSource: source,
		Proposer:      proposer,
		Voter:         voter,
	}, nil
}

// MustNewAuthority is NewAuthority for configuration constants; it panics on error.
func MustNewAuthority(source keys.AddressSource, seed string) Authority {
	a, err := NewAuthority(source, seed)
	if err != nil {
		panic(err)
	}
	return a
}

// SessionKeys bundles the keys of one authority.
func (a Authority) SessionKeys() SessionKeySet {
	return SessionKeySet{Proposer: a.Proposer.Copy(), Voter: a.Voter.Copy()}
}

// Document is the complete genesis state.
type Document struct {
	System             SystemConfig             `json:"system"`
	Balances           BalancesConfig           `json:"balances"`
	Proposers          ProposerConfig           `json:"proposers"`
	Finality           FinalityConfig           `json:"finality"`
	Admin              AdminConfig              `json:"admin"`
	TransactionPayment TransactionPaymentConfig `json:"transactionPayment"`
	EVM                EVMConfig                `json:"evm"`
	Session            SessionConfig            `json:"session"`
	Ledger             LedgerConfig             `json:"ledger"`
	BaseFee            BaseFeeConfig            `json:"baseFee"`
}

// SystemConfig carries the compiled runtime verbatim.
type SystemConfig struct {
	Code hexutil.Bytes `json:"code"`
}

// Endowment is a balance granted at genesis.
type Endowment struct {
	Address common.Address `json:"address"`
	Balance *big.Int       `json:"balance"`
}

// BalancesConfig lists endowed accounts in input order.
type BalancesConfig struct {
	Balances []Endowment `json:"balances"`
}

// ProposerConfig lists block proposer keys. The order fixes round-robin slot
// assignment and must match the authority order.
type ProposerConfig struct {
	Authorities []validatorpk.PubKey `json:"authorities"`
}

// FinalityAuthority is a finality voter with its voting weight.
type FinalityAuthority struct {
	ID     idx.ValidatorID    `json:"id"`
	Key    validatorpk.PubKey `json:"key"`
	Weight uint64             `json:"weight"`
}

// FinalityConfig holds the finality voter set. It is empty unless the build
// asks for it to be derived from the authorities.
type FinalityConfig struct {
	Authorities []FinalityAuthority `json:"authorities"`
}

// AdminConfig holds the privileged root account.
type AdminConfig struct {
	Key *common.Address `json:"key"`
}

// SessionKeySet is the pair of keys registered for one authority.
type SessionKeySet struct {
	Proposer validatorpk.PubKey `json:"proposer"`
	Voter    validatorpk.PubKey `json:"voter"`
}

// SessionKey registers a key set. Account and Validator are the same
// address: the authority is both owner and validator of its keys.
type SessionKey struct {
	Account   common.Address `json:"account"`
	Validator common.Address `json:"validator"`
	Keys      SessionKeySet  `json:"keys"`
}

// SessionConfig lists session keys in authority order.
type SessionConfig struct {
	Keys []SessionKey `json:"keys"`
}

// EVMConfig holds the contract-style accounts of the EVM state.
type EVMConfig struct {
	Accounts evmcore.GenesisAlloc `json:"accounts"`
}

// TransactionPaymentConfig is not configured at genesis.
type TransactionPaymentConfig struct{}

// LedgerConfig is the extended Ethereum ledger module; nothing is configured
// at genesis.
type LedgerConfig struct{}

// BaseFeeConfig is the base-fee module. Zero values mean runtime defaults.
type BaseFeeConfig struct {
	BaseFeePerGas *big.Int `json:"baseFeePerGas,omitempty"`
	Elasticity    uint32   `json:"elasticity,omitempty"`
}
