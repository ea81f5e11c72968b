// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package evmcore holds the EVM side of the genesis state: contract-style
// accounts with nonce, balance, code and storage, and the state root they
// commit to.

package evmcore

import (
	"bytes"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/state"

	"github.com/rony4d/go-storage-chain/keys"
)

// GenesisAccount is an account in the EVM state of the genesis block.
type GenesisAccount struct {
	Nonce   uint64                      `json:"nonce"`
	Balance *big.Int                    `json:"balance"`
	Code    hexutil.Bytes               `json:"code"`
	Storage map[common.Hash]common.Hash `json:"storage"`
}

// Copy returns a deep copy of the account.
func (a GenesisAccount) Copy() GenesisAccount {
	cp := GenesisAccount{
		Nonce:   a.Nonce,
		Code:    common.CopyBytes(a.Code),
		Storage: make(map[common.Hash]common.Hash, len(a.Storage)),
	}
	if a.Balance != nil {
		cp.Balance = new(big.Int).Set(a.Balance)
	}
	for k, v := range a.Storage {
		cp.Storage[k] = v
	}
	return cp
}

// SortedStorageKeys returns the storage slots in ascending byte order.
func (a GenesisAccount) SortedStorageKeys() []common.Hash {
	slots := make([]common.Hash, 0, len(a.Storage))
	for k := range a.Storage {
		slots = append(slots, k)
	}
	sort.Slice(slots, func(i, j int) bool {
		return bytes.Compare(slots[i][:], slots[j][:]) < 0
	})
	return slots
}

// GenesisAlloc maps addresses to their genesis accounts.
type GenesisAlloc map[common.Address]GenesisAccount

// PrefundedAlloc returns the fixed account set every genesis carries: one
// empty account at keys.EVMPrefunded. It does not depend on any input.
func PrefundedAlloc() GenesisAlloc {
	return GenesisAlloc{
		common.HexToAddress(keys.EVMPrefunded): {
			Nonce:   0,
			Balance: new(big.Int),
			Code:    []byte{},
			Storage: map[common.Hash]common.Hash{},
		},
	}
}

// Copy returns a deep copy of the allocation.
func (ga GenesisAlloc) Copy() GenesisAlloc {
	cp := make(GenesisAlloc, len(ga))
	for addr, acc := range ga {
		cp[addr] = acc.Copy()
	}
	return cp
}

// SortedAddresses returns the allocated addresses in ascending byte order.
func (ga GenesisAlloc) SortedAddresses() []common.Address {
	addrs := make([]common.Address, 0, len(ga))
	for addr := range ga {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i][:], addrs[j][:]) < 0
	})
	return addrs
}

// ApplyGenesisAlloc writes the allocation into statedb and commits it,
// returning the state root. Empty accounts are pruned on commit.
func ApplyGenesisAlloc(statedb *state.StateDB, alloc GenesisAlloc) (common.Hash, error) {
	for _, addr := range alloc.SortedAddresses() {
		acc := alloc[addr]
		statedb.SetNonce(addr, acc.Nonce)
		if acc.Balance != nil {
			statedb.SetBalance(addr, acc.Balance)
		} else {
			statedb.SetBalance(addr, new(big.Int))
		}
		if len(acc.Code) > 0 {
			statedb.SetCode(addr, acc.Code)
		}
		for _, key := range acc.SortedStorageKeys() {
			statedb.SetState(addr, key, acc.Storage[key])
		}
	}
	return flush(statedb)
}

// StateRoot computes the state root of alloc in a throwaway in-memory database.
func StateRoot(alloc GenesisAlloc) (common.Hash, error) {
	statedb, err := state.New(common.Hash{}, state.NewDatabase(rawdb.NewMemoryDatabase()), nil)
	if err != nil {
		return common.Hash{}, err
	}
	return ApplyGenesisAlloc(statedb, alloc)
}

// flush commits pending state changes to the trie, then the trie nodes to
// the backing database.
func flush(statedb *state.StateDB) (root common.Hash, err error) {
	root, err = statedb.Commit(true)
	if err != nil {
		return
	}
	err = statedb.Database().TrieDB().Commit(root, false, nil)
	return
}
