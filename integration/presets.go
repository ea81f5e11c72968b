package integration

// Package integration holds the named network configurations. Each preset
// is a chainspec.Descriptor whose genesis is assembled from fixed seeds and
// literal fixture addresses, so every node started from the same preset and
// runtime agrees on block zero.
//
// Usage:
//   desc := integration.Development(code)
//   desc, err := integration.ByName("local", code, genesis.WithFinalityFromAuthorities())
//
// Both presets share the same assembler and key deriver; they differ only in
// the constants they feed in.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-storage-chain/chainspec"
	"github.com/rony4d/go-storage-chain/genesis"
	"github.com/rony4d/go-storage-chain/keys"
)

// ErrUnknownChain is returned by ByName for a name no preset answers to.
var ErrUnknownChain = errors.New("unknown chain")

// authoritySpec names one authority of a preset: where its address comes
// from and the seed of its consensus keys.
type authoritySpec struct {
	address keys.AddressSource
	seed    string
}

// preset is the constant input of a named configuration.
type preset struct {
	name        string
	id          string
	chainType   chainspec.ChainType
	aliases     []string
	authorities []authoritySpec
	admin       keys.AddressSource
	funded      []keys.AddressSource
}

var (
	developmentPreset = preset{
		name:      "Development",
		id:        "dev",
		chainType: chainspec.Development,
		aliases:   []string{"dev", "development"},
		authorities: []authoritySpec{
			{keys.Literal(keys.Alith), "//Alice"},
		},
		admin: keys.Literal(keys.DevAdmin),
		funded: []keys.AddressSource{
			keys.Literal(keys.DevAuthority),
			keys.Literal(keys.DevEndowed1),
			keys.Literal(keys.DevEndowed2),
		},
	}

	localTestnetPreset = preset{
		name:      "Local Testnet",
		id:        "local_testnet",
		chainType: chainspec.Local,
		aliases:   []string{"local", "local_testnet"},
		authorities: []authoritySpec{
			{keys.Literal(keys.Alith), "//Alice"},
			{keys.Literal(keys.Baltathar), "//Bob"},
		},
		admin: keys.Literal(keys.Alith),
		funded: []keys.AddressSource{
			keys.Literal(keys.Alith),
			keys.Literal(keys.Baltathar),
			keys.Literal(keys.Charleth),
			keys.Literal(keys.Dorothy),
		},
	}

	presets = []preset{developmentPreset, localTestnetPreset}
)

// Properties are the token properties every preset advertises.
func Properties() chainspec.Properties {
	return chainspec.NewProperties(genesis.TokenDecimals, genesis.TokenSymbol)
}

// Development returns the single-authority development network.
func Development(code []byte, opts ...genesis.Option) *chainspec.Descriptor {
	return developmentPreset.descriptor(code, opts)
}

// LocalTestnet returns the two-authority local test network.
func LocalTestnet(code []byte, opts ...genesis.Option) *chainspec.Descriptor {
	return localTestnetPreset.descriptor(code, opts)
}

// Names lists the canonical preset ids.
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.id
	}
	return names
}

// ByName selects a preset by id or alias, case-insensitively.
func ByName(name string, code []byte, opts ...genesis.Option) (*chainspec.Descriptor, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		for _, alias := range p.aliases {
			if alias == key {
				return p.descriptor(code, opts), nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownChain, name, strings.Join(Names(), ", "))
}

func (p preset) descriptor(code []byte, opts []genesis.Option) *chainspec.Descriptor {
	code = common.CopyBytes(code)
	opts = append([]genesis.Option(nil), opts...)
	builder := func() (*genesis.Document, error) {
		return p.build(code, opts)
	}
	return chainspec.New(p.name, p.id, p.chainType, builder, chainspec.WithProperties(Properties()))
}

// build resolves the preset constants and hands them to the assembler.
func (p preset) build(code []byte, opts []genesis.Option) (*genesis.Document, error) {
	authorities := make([]genesis.Authority, len(p.authorities))
	for i, a := range p.authorities {
		auth, err := genesis.NewAuthority(a.address, a.seed)
		if err != nil {
			return nil, fmt.Errorf("authority %d of %s: %w", i, p.id, err)
		}
		authorities[i] = auth
	}

	admin, err := p.admin.Resolve()
	if err != nil {
		return nil, fmt.Errorf("admin of %s: %w", p.id, err)
	}

	funded := make([]common.Address, len(p.funded))
	for i, src := range p.funded {
		addr, err := src.Resolve()
		if err != nil {
			return nil, fmt.Errorf("endowed account %d of %s: %w", i, p.id, err)
		}
		funded[i] = addr
	}

	return genesis.Build(code, authorities, admin, funded, opts...)
}
