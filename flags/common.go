package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// Logging flags shared by every command.
var (
	LogFormatFlag = cli.StringFlag{
		Name:  "log.format",
		Usage: "Log output format (text|json)",
		Value: "text",
	}
	LogVerbosityFlag = cli.IntFlag{
		Name:  "log.verbosity",
		Usage: "Logging verbosity (0=fatal,1=error,2=warn,3=info,4=debug,5=trace)",
		Value: 3,
	}
	LogColorFlag = cli.BoolFlag{
		Name:  "log.color",
		Usage: "Enable colored log output",
	}
	SentryDSNFlag = cli.StringFlag{
		Name:  "sentry.dsn",
		Usage: "Report errors to the Sentry project at this DSN",
	}
)

// CommonFlags returns the base set of CLI flags shared across commands.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		LogFormatFlag,
		LogVerbosityFlag,
		LogColorFlag,
		SentryDSNFlag,
	}
}
