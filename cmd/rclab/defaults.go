package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rclab/rclab/pkg/circuit"
	"github.com/rclab/rclab/pkg/config"
	"github.com/rclab/rclab/pkg/utils/ptr"
)

func NewDefaultsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "defaults",
		Short:   "Show the stored default parameters of a running server",
		GroupID: gBasic,
		Long: `Show the default circuit parameters stored by a running server.

These defaults fill in any parameter a request to the chart page or the
waveform API leaves out. Change them with 'rclab defaults set'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := apiClient.GetDefaults()
			if err != nil {
				return fmt.Errorf("failed to get defaults: %v", err)
			}

			// Fill absent fields with the package defaults, same as the
			// server does.
			conf := config.NewFileFromConfig(raw, "")
			p := conf.Parameters()

			cmd.Println(bold("Stored defaults:"))
			cmd.Printf("  Resistance: %s\n", bold("%.0f Ω", p.Resistance))
			cmd.Printf("  Capacitance: %s\n", bold("%.0f µF", p.Capacitance))
			cmd.Printf("  Supply voltage: %s\n", bold("%.1f V", p.SupplyVoltage))
			cmd.Printf("  Mode: %s\n", bold("%s", p.Mode))
			cmd.Printf("  Time constant: %s\n", bold("%.2f ms", p.TimeConstant()*1e3))

			return nil
		},
	}

	cmd.AddCommand(newDefaultsSetCommand())

	return cmd
}

func newDefaultsSetCommand() *cobra.Command {
	flags := &paramFlags{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the stored default parameters of a running server",
		Long: `Update the default circuit parameters stored by a running server.

Only the flags you pass are changed; the others keep their stored
values. The server persists the new defaults and notifies subscribed
watchers ('rclab watch').`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw := &config.RawFileConfig{}
			if cmd.Flags().Changed("resistance") {
				raw.ResistanceOhms = ptr.To(flags.resistance)
			}
			if cmd.Flags().Changed("capacitance") {
				raw.CapacitanceMicrofarads = ptr.To(flags.capacitance)
			}
			if cmd.Flags().Changed("voltage") {
				raw.SupplyVoltageVolts = ptr.To(flags.supplyVoltage)
			}
			if cmd.Flags().Changed("mode") {
				mode, err := circuit.ParseMode(flags.mode)
				if err != nil {
					return err
				}
				raw.Mode = ptr.To(string(mode))
			}

			ret, err := apiClient.SetDefaults(raw)
			if err != nil {
				return fmt.Errorf("failed to set defaults: %v", err)
			}

			if ret != "" {
				logrus.Infof("server responded: %s", ret)
			}

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
