package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Matrix  MatrixCmd        `cmd:"" help:"Play every ordered pair of tiers and print the win-rate matrix"`
	Match   MatchCmd         `cmd:"" help:"Play one tier against another"`
	Replay  ReplayCmd        `cmd:"" help:"Replay a single game round by round"`
	Run     RunCmd           `cmd:"" help:"Run the matchups defined in the config file"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("war0"),
		kong.Description("Simulator and AI evaluator for the War.0 lane card game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx.BindTo(ctx, (*context.Context)(nil))
	err := kctx.Run(&cli.Globals)
	kctx.FatalIfErrorf(err)
}
