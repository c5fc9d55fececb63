package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play blackjack in the terminal"`
	Stats   StatsCmd         `cmd:"" help:"Show the score ledger"`
	Export  ExportCmd        `cmd:"" help:"Export game data to a file"`
	Import  ImportCmd        `cmd:"" help:"Import game data from a file"`
	QR      QRCmd            `cmd:"qr" help:"Render game data as a QR code image"`
	Reset   ResetCmd         `cmd:"" help:"Erase all stored game data"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Terminal blackjack with a tamper-checked score ledger"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
