package genesis

import (
	"fmt"
	"math/big"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/rony4d/go-storage-chain/evmcore"
	"github.com/rony4d/go-storage-chain/inter/validatorpk"
)

// Copy returns a deep copy of the document.
func (d *Document) Copy() *Document {
	cp := &Document{
		System:             SystemConfig{Code: common.CopyBytes(d.System.Code)},
		TransactionPayment: d.TransactionPayment,
		Ledger:             d.Ledger,
		BaseFee:            BaseFeeConfig{BaseFeePerGas: copyBig(d.BaseFee.BaseFeePerGas), Elasticity: d.BaseFee.Elasticity},
	}

	if d.Balances.Balances != nil {
		cp.Balances.Balances = make([]Endowment, len(d.Balances.Balances))
		for i, e := range d.Balances.Balances {
			cp.Balances.Balances[i] = Endowment{Address: e.Address, Balance: copyBig(e.Balance)}
		}
	}
	if d.Proposers.Authorities != nil {
		cp.Proposers.Authorities = make([]validatorpk.PubKey, len(d.Proposers.Authorities))
		for i, pk := range d.Proposers.Authorities {
			cp.Proposers.Authorities[i] = pk.Copy()
		}
	}
	if d.Finality.Authorities != nil {
		cp.Finality.Authorities = make([]FinalityAuthority, len(d.Finality.Authorities))
		for i, fa := range d.Finality.Authorities {
			cp.Finality.Authorities[i] = FinalityAuthority{ID: fa.ID, Key: fa.Key.Copy(), Weight: fa.Weight}
		}
	}
	if d.Admin.Key != nil {
		key := *d.Admin.Key
		cp.Admin.Key = &key
	}
	if d.Session.Keys != nil {
		cp.Session.Keys = make([]SessionKey, len(d.Session.Keys))
		for i, sk := range d.Session.Keys {
			cp.Session.Keys[i] = SessionKey{
				Account:   sk.Account,
				Validator: sk.Validator,
				Keys:      SessionKeySet{Proposer: sk.Keys.Proposer.Copy(), Voter: sk.Keys.Voter.Copy()},
			}
		}
	}
	if d.EVM.Accounts != nil {
		cp.EVM.Accounts = d.EVM.Accounts.Copy()
	}
	return cp
}

// Validate checks the cross-slot invariants Build guarantees: one session
// entry per proposer key in the same order, owner equal to validator, a
// finality set that is empty or matches the authorities, equal endowments
// and an administrator.
func (d *Document) Validate() error {
	if len(d.System.Code) == 0 {
		return ErrMissingRuntimeArtifact
	}
	if d.Admin.Key == nil {
		return fmt.Errorf("%w: no administrator", ErrInconsistent)
	}

	sessions := d.Session.Keys
	if len(sessions) != len(d.Proposers.Authorities) {
		return fmt.Errorf("%w: %d session keys for %d proposers", ErrInconsistent, len(sessions), len(d.Proposers.Authorities))
	}
	for i, sk := range sessions {
		if sk.Account != sk.Validator {
			return fmt.Errorf("%w: session %d owner %s differs from validator %s", ErrInconsistent, i, sk.Account.Hex(), sk.Validator.Hex())
		}
		if !sk.Keys.Proposer.Equal(d.Proposers.Authorities[i]) {
			return fmt.Errorf("%w: session %d proposer key out of order", ErrInconsistent, i)
		}
	}

	if n := len(d.Finality.Authorities); n != 0 {
		if n != len(sessions) {
			return fmt.Errorf("%w: %d finality voters for %d authorities", ErrInconsistent, n, len(sessions))
		}
		for i, fa := range d.Finality.Authorities {
			if fa.ID != idx.ValidatorID(i+1) || !fa.Key.Equal(sessions[i].Keys.Voter) {
				return fmt.Errorf("%w: finality voter %d out of order", ErrInconsistent, i)
			}
		}
	}

	if len(d.Balances.Balances) == 0 {
		return nil
	}
	if len(sessions) == 0 {
		return fmt.Errorf("%w: endowments without authorities", ErrInconsistent)
	}
	share := EndowmentPerAccount(len(sessions))
	for _, e := range d.Balances.Balances {
		if e.Balance == nil || e.Balance.Cmp(share) != 0 {
			return fmt.Errorf("%w: endowment of %s is %v, want %v", ErrInconsistent, e.Address.Hex(), e.Balance, share)
		}
	}
	return nil
}

// EVMStateRoot returns the state root committed to by the EVM accounts.
func (d *Document) EVMStateRoot() (common.Hash, error) {
	return evmcore.StateRoot(d.EVM.Accounts)
}

// Hash returns the Keccak-256 of the document's RLP encoding. Map-backed
// slots are encoded in ascending key order, so equal documents hash equally.
func (d *Document) Hash() (common.Hash, error) {
	enc, err := rlp.EncodeToBytes(d.toRLP())
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(enc), nil
}

type rlpSlot struct {
	Key   common.Hash
	Value common.Hash
}

type rlpAccount struct {
	Address common.Address
	Nonce   uint64
	Balance *big.Int
	Code    []byte
	Storage []rlpSlot
}

type rlpDocument struct {
	Code          []byte
	Balances      []Endowment
	Proposers     []validatorpk.PubKey
	Finality      []FinalityAuthority
	Admin         []common.Address
	Session       []SessionKey
	EVM           []rlpAccount
	BaseFeePerGas *big.Int
	Elasticity    uint32
}

func (d *Document) toRLP() *rlpDocument {
	enc := &rlpDocument{
		Code:          d.System.Code,
		Balances:      make([]Endowment, len(d.Balances.Balances)),
		Proposers:     d.Proposers.Authorities,
		Finality:      d.Finality.Authorities,
		Session:       d.Session.Keys,
		BaseFeePerGas: bigOrZero(d.BaseFee.BaseFeePerGas),
		Elasticity:    d.BaseFee.Elasticity,
	}
	for i, e := range d.Balances.Balances {
		enc.Balances[i] = Endowment{Address: e.Address, Balance: bigOrZero(e.Balance)}
	}
	if d.Admin.Key != nil {
		enc.Admin = []common.Address{*d.Admin.Key}
	}
	for _, addr := range d.EVM.Accounts.SortedAddresses() {
		acc := d.EVM.Accounts[addr]
		ra := rlpAccount{
			Address: addr,
			Nonce:   acc.Nonce,
			Balance: bigOrZero(acc.Balance),
			Code:    acc.Code,
		}
		for _, key := range acc.SortedStorageKeys() {
			ra.Storage = append(ra.Storage, rlpSlot{Key: key, Value: acc.Storage[key]})
		}
		enc.EVM = append(enc.EVM, ra)
	}
	return enc
}

func copyBig(b *big.Int) *big.Int {
	if b == nil {
		return nil
	}
	return new(big.Int).Set(b)
}

func bigOrZero(b *big.Int) *big.Int {
	if b == nil {
		return new(big.Int)
	}
	return b
}
