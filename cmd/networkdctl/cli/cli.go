package cli

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	networkd "github.com/frobware/go-networkd"
	"github.com/frobware/go-networkd/config"
	"github.com/frobware/go-networkd/logging"
)

// CLI is the root command structure for networkdctl.
type CLI struct {
	Namespace string `name:"namespace" short:"N" help:"Network namespace of the networkd instance to query."`
	Root      string `name:"root" help:"Override the runtime state root (mainly for testing)."`
	Config    string `name:"config" help:"Config file path." default:"${default_config_path}"`
	Log       string `name:"log" help:"Log spec (e.g., 'info,monitor=debug')." env:"NETWORKDCTL_LOG"`

	Status  StatusCmd  `cmd:"" default:"withargs" help:"Show global network state."`
	Link    LinkCmd    `cmd:"" help:"Show per-link state."`
	Monitor MonitorCmd `cmd:"" help:"Watch runtime state and report transitions."`
}

// KongOptions returns the Kong configuration for the CLI.
func KongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("networkdctl"),
		kong.Description("Inspect and monitor systemd-networkd runtime state."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"default_config_path": config.DefaultConfigPath,
		},
	}
}

// LoadConfig loads the configuration file.
func (c *CLI) LoadConfig() (config.Config, error) {
	return config.Load(c.Config)
}

// Logger creates a logger from config-file settings overridden by the
// --log flag. Output goes to stderr so command output stays clean.
func (c *CLI) Logger() (*slog.Logger, error) {
	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}

	format, err := logging.ParseFormat(cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	return logging.New(logging.Options{
		CLISpec:    c.Log,
		ConfigSpec: cfg.Logging.ToSpec(),
		Format:     format,
	})
}

// clientOptions translates the global flags into library options.
func (c *CLI) clientOptions(logger *slog.Logger) ([]networkd.Option, error) {
	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}

	namespace := cfg.Namespace
	if c.Namespace != "" {
		namespace = c.Namespace
	}

	opts := []networkd.Option{
		networkd.WithNamespace(namespace),
		networkd.WithLogger(logger),
	}
	if c.Root != "" {
		dirs, err := config.NewRuntimeDirs(c.Root)
		if err != nil {
			return nil, fmt.Errorf("invalid --root: %w", err)
		}
		opts = append(opts, networkd.WithRuntimeDirs(dirs))
	}
	return opts, nil
}

// Client builds the state client along with its logger and options.
func (c *CLI) Client() (*networkd.Client, []networkd.Option, *slog.Logger, error) {
	logger, err := c.Logger()
	if err != nil {
		return nil, nil, nil, err
	}
	opts, err := c.clientOptions(logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return networkd.New(opts...), opts, logger, nil
}
