package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-storage-chain/flags"
	"github.com/rony4d/go-storage-chain/genesis"
	"github.com/rony4d/go-storage-chain/logging"
)

// Config aggregates everything the launcher needs to render a chain spec.
type Config struct {
	Chain   ChainConfig
	Logging logging.Config
}

// ChainConfig selects the preset and where its input and output live.
type ChainConfig struct {
	Name                    string
	RuntimePath             string
	Output                  string // empty means the app writer
	FinalityFromAuthorities bool
}

// GenesisOptions translates the chain settings into assembler options.
func (c ChainConfig) GenesisOptions() []genesis.Option {
	var opts []genesis.Option
	if c.FinalityFromAuthorities {
		opts = append(opts, genesis.WithFinalityFromAuthorities())
	}
	return opts
}

func defaultConfig() Config {
	def := DefaultConfig()
	return Config{
		Chain: ChainConfig{
			Name:                    def.Chain.Name,
			FinalityFromAuthorities: def.Chain.FinalityFromAuthorities,
		},
		Logging: logging.Config{
			Verbosity: def.Logging.Verbosity,
			Format:    def.Logging.Format,
			Color:     def.Logging.Color,
		},
	}
}

// MakeAllConfigs merges defaults and CLI flag overrides into a single
// config struct.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()
	applyCLIOverrides(ctx, &cfg)

	if cfg.Chain.Name == "" {
		return cfg, fmt.Errorf("--%s must not be empty", flags.ChainFlag.Name)
	}
	return cfg, nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet(flags.ChainFlag.Name) {
		cfg.Chain.Name = ctx.String(flags.ChainFlag.Name)
	}
	if ctx.IsSet(flags.RuntimeFlag.Name) {
		cfg.Chain.RuntimePath = resolvePath(ctx.String(flags.RuntimeFlag.Name))
	}
	if ctx.IsSet(flags.OutputFlag.Name) {
		cfg.Chain.Output = resolvePath(ctx.String(flags.OutputFlag.Name))
	}
	if ctx.Bool(flags.FinalityAuthoritiesFlag.Name) {
		cfg.Chain.FinalityFromAuthorities = true
	}

	if ctx.GlobalIsSet(flags.LogFormatFlag.Name) {
		cfg.Logging.Format = ctx.GlobalString(flags.LogFormatFlag.Name)
	}
	if ctx.GlobalIsSet(flags.LogVerbosityFlag.Name) {
		cfg.Logging.Verbosity = ctx.GlobalInt(flags.LogVerbosityFlag.Name)
	}
	if ctx.GlobalIsSet(flags.LogColorFlag.Name) {
		cfg.Logging.Color = ctx.GlobalBool(flags.LogColorFlag.Name)
	}
	if ctx.GlobalIsSet(flags.SentryDSNFlag.Name) {
		cfg.Logging.SentryDSN = ctx.GlobalString(flags.SentryDSNFlag.Name)
	}
}

// readRuntime loads the compiled runtime blob. A missing or empty file is
// reported as genesis.ErrMissingRuntimeArtifact.
func readRuntime(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no --%s given", genesis.ErrMissingRuntimeArtifact, flags.RuntimeFlag.Name)
	}
	code, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", genesis.ErrMissingRuntimeArtifact, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read runtime %s: %w", path, err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", genesis.ErrMissingRuntimeArtifact, path)
	}
	return code, nil
}

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
