package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rclab/rclab/pkg/server"
	"github.com/rclab/rclab/pkg/version"
)

var listenAddress = server.DefaultListenAddress

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the interactive visualizer in the foreground",
		GroupID: gBasic,
		Long: `Run the interactive visualizer in the foreground.

Open the printed address in a browser to see the charts. Parameters can
be changed per request through the r, c, u0 and mode query parameters,
e.g. /?r=2200&mode=discharging. Stored defaults are read from the
config file and adjustable through the API ('rclab defaults set').`,
		RunE: func(_ *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("rclab server starting")
			return server.Run(configPath, listenAddress)
		},
	}

	f := cmd.Flags()
	f.StringVar(&listenAddress, "listen", server.DefaultListenAddress, "address to listen on (host:port)")

	return cmd
}
