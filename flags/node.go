package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// Chain selection and output flags of build-spec.
var (
	ChainFlag = cli.StringFlag{
		Name:  "chain",
		Usage: "Named chain configuration (dev|local)",
		Value: "dev",
	}
	RuntimeFlag = cli.StringFlag{
		Name:  "runtime",
		Usage: "Path to the compiled runtime blob embedded in genesis",
	}
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "Write the chain spec to this file instead of stdout",
	}
	FinalityAuthoritiesFlag = cli.BoolFlag{
		Name:  "finality.authorities",
		Usage: "Fill the finality voter set from the authorities (empty by default)",
	}
)

// ChainFlags holds the knobs that pick and render a chain spec.
func ChainFlags() []cli.Flag {
	return []cli.Flag{
		ChainFlag,
		RuntimeFlag,
		OutputFlag,
		FinalityAuthoritiesFlag,
	}
}
