package chainspec

import "fmt"

// ChainType tells what kind of network a descriptor describes.
type ChainType uint8

const (
	// Development is a single-node chain for local work.
	Development ChainType = iota
	// Local is a multi-node network on one machine or LAN.
	Local
	// Live is a public network.
	Live
)

var chainTypeNames = map[ChainType]string{
	Development: "Development",
	Local:       "Local",
	Live:        "Live",
}

func (t ChainType) String() string {
	if name, ok := chainTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ChainType(%d)", uint8(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t ChainType) MarshalText() ([]byte, error) {
	name, ok := chainTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown chain type %d", uint8(t))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ChainType) UnmarshalText(text []byte) error {
	for ct, name := range chainTypeNames {
		if name == string(text) {
			*t = ct
			return nil
		}
	}
	return fmt.Errorf("unknown chain type %q", text)
}
