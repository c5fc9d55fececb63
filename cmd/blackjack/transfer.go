package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lox/blackjack/internal/score"
	"github.com/lox/blackjack/internal/share"
)

type ExportCmd struct {
	globalFlags
	Out      string `kong:"short='o',default='',help='Output file (defaults to blackjack-data-<date>.json)'"`
	Compress bool   `kong:"help='Emit the compact compressed transport encoding'"`
}

func (c *ExportCmd) Run() error {
	app, err := c.setup()
	if err != nil {
		return err
	}

	now := time.Now()
	env, err := share.Export(app.store, now)
	if err != nil {
		return err
	}
	payload, err := share.EncodeTransport(env, c.Compress)
	if err != nil {
		return err
	}

	out := c.Out
	if out == "" {
		out = fmt.Sprintf("blackjack-data-%s.json", now.Format("2006-01-02"))
	}
	if err := os.WriteFile(out, payload, 0o644); err != nil {
		return err
	}
	fmt.Printf("Exported %d bytes to %s\n", len(payload), out)
	return nil
}

type ImportCmd struct {
	globalFlags
	File string `kong:"arg,help='File containing an exported envelope'"`
	Yes  bool   `kong:"short='y',help='Skip the confirmation prompt'"`
}

func (c *ImportCmd) Run() error {
	app, err := c.setup()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	env, err := share.Parse(data)
	if err != nil {
		return err
	}

	fmt.Printf("Envelope version %s, exported %s\n", env.Version, score.FormatDate(env.ExportDate))
	if !c.Yes {
		if !confirm("Importing overwrites your local scores and settings. Continue?") {
			fmt.Println("Import cancelled")
			return nil
		}
	}

	if err := env.Apply(app.store); err != nil {
		return err
	}
	fmt.Println("Import complete")
	return nil
}

type QRCmd struct {
	globalFlags
	Out  string `kong:"short='o',default='blackjack-qr.png',help='Output PNG file'"`
	Size int    `kong:"default='300',help='Image size in pixels'"`
}

func (c *QRCmd) Run() error {
	app, err := c.setup()
	if err != nil {
		return err
	}

	env, err := share.Export(app.store, time.Now())
	if err != nil {
		return err
	}
	payload, err := share.EncodeTransport(env, true)
	if err != nil {
		return err
	}
	if len(payload) > share.RecommendedMaxBytes {
		app.logger.Warn("payload is large for a QR code and may be hard to scan", "bytes", len(payload))
	}

	png, err := share.QRCode(payload, c.Size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, png, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote QR code (%d byte payload) to %s\n", len(payload), c.Out)
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
