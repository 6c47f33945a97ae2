package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rclab/rclab/pkg/events"
)

func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   "Print parameter changes of a running server as they happen",
		GroupID: gAdvanced,
		Long: `Subscribe to a running server's event stream and print each
parameter change as it happens. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logrus.Infof("watching %s for parameter changes", serverAddress)

			for ev := range apiClient.SubscribeEvents(ctx) {
				if ev.Name != events.ParamsChanged {
					logrus.WithField("event", ev.Name).Debug("ignoring event")
					continue
				}

				payload, err := events.DecodeAs[events.ParamsChangedEvent](ev)
				if err != nil {
					logrus.WithError(err).Error("failed to decode params.changed event")
					continue
				}

				cmd.Println(bold("%s", payload.Summary))
				cmd.Println(payload.Parameters.Mode.Label())
			}

			// Channel closed: either Ctrl-C or the server went away.
			if ctx.Err() == nil {
				logrus.Warn("event stream closed by server")
			}

			return nil
		},
	}
}
