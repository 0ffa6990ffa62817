package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Globals are flags shared by every command.
type Globals struct {
	Config  string `short:"c" help:"Configuration file path" default:"noobdev.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`
}

// CLI is the command tree.
type CLI struct {
	Globals

	Serve  ServeCmd  `cmd:"" help:"Serve the wasm bundle and its host page"`
	Render RenderCmd `cmd:"" help:"Print the site chrome for a page as HTML"`
	Pages  PagesCmd  `cmd:"" help:"List pages, navigation links and footer links"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("noobdev"),
		kong.Description("Noobdev site chrome tooling."),
		kong.UsageOnError(),
	)

	// Set up logging
	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := ctx.Run(&cli.Globals); err != nil {
		slog.Error("command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
