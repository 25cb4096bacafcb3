package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"goledger/config"
	"goledger/node"
)

func main() {
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("go", pterm.FgLightGreen.ToStyle()),
		putils.LettersFromStringWithStyle("ledger", pterm.FgDarkGray.ToStyle()),
	).Render()

	cfg := config.FromEnv()
	pterm.Info.Printfln("node %s: http on :%s, p2p on :%s, %d seed peer(s)",
		cfg.NodeName, cfg.HTTPPort, cfg.P2PPort, len(cfg.Peers))

	n := node.New(cfg, logger)
	if err := n.Start(); err != nil {
		logger.Error("node exited", "err", err)
		os.Exit(1)
	}
}
