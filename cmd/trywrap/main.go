package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/trywrap <command> <flags> <args>

var log = logging.Logger("trywrap/cmd")

var (
	logLevelFlag = cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level for all loggers (debug, info, warn, error)",
		EnvVars: []string{"TRYWRAP_LOG_LEVEL"},
		Value:   "warn",
	}
	linesFlag = cli.IntFlag{
		Name:    "lines",
		Usage:   "number of concurrent workers",
		EnvVars: []string{"TRYWRAP_LINES"},
		Value:   2,
	}
	minSizeFlag = cli.IntFlag{
		Name:    "min-size",
		Usage:   "files smaller than this many bytes are reported as empty",
		EnvVars: []string{"TRYWRAP_MIN_SIZE"},
		Value:   0,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "trywrap",
		Usage: "run fallible operations and report Right, Left or Empty per input",
		Flags: []cli.Flag{
			&logLevelFlag,
		},
		Before: setup,
		Commands: []*cli.Command{
			&ReadCmd,
			&ParseCmd,
			&DivideCmd,
		},
	}
}

func setup(ctx *cli.Context) error {
	lvl, err := logging.LevelFromString(ctx.String(logLevelFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", logLevelFlag.Name, err)
	}
	logging.SetAllLoggers(lvl)

	runID := uuid.New()
	ctx.Context = withRunID(ctx.Context, runID)
	log.Infow("starting", "run", runID, "command", ctx.Args().First())
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
