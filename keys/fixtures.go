package keys

import (
	"fmt"
	"sort"
	"strings"
)

// Well-known fixture addresses. They bypass derivation and are used
// wherever a configuration names them.
const (
	Alith     = "0xB3C58D472c03CC571EbC97b42BDA4D38a83dF21D"
	Baltathar = "0xa22688CbDB4C8d84Bc315C8c1fA7d3B407926411"
	Charleth  = "0x73852AF9EA8c4744DAb5F50f2943c6Ba9a3D6ebC"
	Dorothy   = "0xC743FF582A879d9Ab1314c0c80ec5DaE66d39E0b"
	Ethan     = "0xFf64d3F6efE2317EE2807d223a0Bdc4c0c49dfDB"

	// Development network identities.
	DevAuthority = "0xf24FF3a9CF04c71Dbc94D0b566f7A27B94566cac"
	DevEndowed1  = "0x7ed8c8a0C4d1FeA01275fE13F0Ef23bce5CBF8C3"
	DevEndowed2  = "0x3263236Cbc327B5519E373CC591318e56e7c5081"
	DevAdmin     = "0x6Ff7bE9856B8D3e1c9b65a20f4daA41c47e0D516"

	// EVMPrefunded is the contract-style account present in every genesis.
	EVMPrefunded = "0x6Be02d1d3665660d22FF9624b7BE0551ee1Ac91b"
)

var fixtures = map[string]string{
	"alith":         Alith,
	"baltathar":     Baltathar,
	"charleth":      Charleth,
	"dorothy":       Dorothy,
	"ethan":         Ethan,
	"dev-authority": DevAuthority,
	"dev-endowed-1": DevEndowed1,
	"dev-endowed-2": DevEndowed2,
	"dev-admin":     DevAdmin,
	"evm-prefunded": EVMPrefunded,
}

// Fixture returns the literal source of a well-known identity. Names are
// case-insensitive.
func Fixture(name string) (AddressSource, error) {
	hex, ok := fixtures[strings.ToLower(name)]
	if !ok {
		return AddressSource{}, fmt.Errorf("%w: unknown fixture %q", ErrInvalidAddress, name)
	}
	return Literal(hex), nil
}

// FixtureNames lists the known fixture names in sorted order.
func FixtureNames() []string {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
