package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
	"github.com/alecthomas/kong"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPath overrides the --config flag when non-empty. Set by tests.
	ConfigPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("imdbtv"),
		kong.Description("Generate a Sonarr-compatible JSON list of the top N popular TV shows from IMDb."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := cli.Config
	if m.ConfigPath != "" {
		configPath = m.ConfigPath
	}
	cfg, err := imdbtv.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Fix or remove the config file at %q\n", configPath)
		return err
	}
	deps.Config = cfg

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	})).With("run_id", uuid.NewString())

	return kongCtx.Run(deps)
}
