package launcher

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-storage-chain/chainspec"
	"github.com/rony4d/go-storage-chain/flags"
	"github.com/rony4d/go-storage-chain/integration"
	"github.com/rony4d/go-storage-chain/logging"
)

var app = newApp()

var (
	buildSpecCommand = cli.Command{
		Name:      "build-spec",
		Usage:     "Render a named chain spec with its genesis as JSON",
		ArgsUsage: "",
		Action:    buildSpec,
		Flags:     flags.ChainFlags(),
		Description: `
Reads the compiled runtime given by --runtime, assembles the genesis of the
chain named by --chain and writes the chain spec to --output or stdout.`,
	}
	listCommand = cli.Command{
		Name:   "list",
		Usage:  "List the known chain names",
		Action: listChains,
	}
)

func newApp() *cli.App {
	app := flags.NewApp("storage chain spec builder")
	app.Commands = []cli.Command{
		buildSpecCommand,
		listCommand,
	}
	return app
}

// Launch runs the CLI with the given process arguments.
func Launch(args []string) error {
	return app.Run(args)
}

func buildSpec(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}

	cfg.Logging.Output = ctx.App.ErrWriter
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	chainspec.SetLogger(logger)

	code, err := readRuntime(cfg.Chain.RuntimePath)
	if err != nil {
		return err
	}
	desc, err := integration.ByName(cfg.Chain.Name, code, cfg.Chain.GenesisOptions()...)
	if err != nil {
		return err
	}

	doc, err := desc.Genesis()
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	hash, err := doc.Hash()
	if err != nil {
		return err
	}
	evmRoot, err := doc.EVMStateRoot()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if cfg.Chain.Output == "" {
		if _, err := ctx.App.Writer.Write(data); err != nil {
			return err
		}
	} else if err := os.WriteFile(cfg.Chain.Output, data, 0o644); err != nil {
		return fmt.Errorf("write chain spec: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"chain":       desc.ID(),
		"authorities": len(doc.Session.Keys),
		"genesis":     hash.Hex(),
		"evmRoot":     evmRoot.Hex(),
	}).Info("Chain spec written")
	return nil
}

func listChains(ctx *cli.Context) error {
	for _, name := range integration.Names() {
		desc, err := integration.ByName(name, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "%s\t%s\t%s\n", desc.ID(), desc.Name(), desc.ChainType())
	}
	return nil
}
