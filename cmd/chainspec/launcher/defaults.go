package launcher

// Defaults bundles the baseline configuration values the launcher uses
// before flags override them.
type Defaults struct {
	Chain   ChainDefaults
	Logging LoggingDefaults
}

// ChainDefaults selects the chain spec to build.
type ChainDefaults struct {
	Name                    string // preset id or alias, see integration.Names
	FinalityFromAuthorities bool   // leave the finality voter set empty unless asked
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    // 0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace
	Format    string // text or json
	Color     bool
}

// DefaultConfig returns a fully populated Defaults instance.
func DefaultConfig() Defaults {
	return Defaults{
		Chain: ChainDefaults{
			Name:                    "dev",
			FinalityFromAuthorities: false,
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
	}
}
