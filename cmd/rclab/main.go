package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rclab/rclab/pkg/client"
	"github.com/rclab/rclab/pkg/server"
	"github.com/rclab/rclab/pkg/version"
)

var (
	logLevel      = "info"
	serverAddress = server.DefaultListenAddress
	configPath    = defaultConfigPath()
)

var (
	gBasic        = "Basic:"
	gAdvanced     = "Advanced:"
	commandGroups = []string{
		gBasic,
		gAdvanced,
	}
)

// apiClient talks to a running rclab server. It is created after flag
// parsing so --server takes effect.
var apiClient *client.Client

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rclab.json"
	}
	return filepath.Join(home, ".rclab.json")
}

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, client.ErrServerNotRunning) {
		fmt.Fprintln(os.Stderr, "\nError: rclab server is not running")
		fmt.Fprintln(os.Stderr, "Start it first with 'rclab serve', or point --server at a running instance.")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rclab",
		Short: "rclab is an interactive visualizer for RC circuit step responses",
		Long: `rclab computes and visualizes the step response of a first-order RC
circuit: capacitor voltage, charge and current during charging or
discharging, over a window of five time constants.

Run 'rclab serve' and open the printed address for the interactive
charts, or use 'rclab compute' and 'rclab export' fully offline.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := setupLogger(); err != nil {
				return err
			}
			apiClient = client.NewClient(serverAddress)
			return nil
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path")
	globalFlags.StringVar(&serverAddress, "server", serverAddress, "rclab server address (host:port)")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewServeCommand(),
		NewComputeCommand(),
		NewExportCommand(),
		NewDefaultsCommand(),
		NewWatchCommand(),
		NewVersionCommand(),
	)

	return cmd
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}
