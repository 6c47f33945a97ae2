package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rclab/rclab/pkg/circuit"
)

func NewComputeCommand() *cobra.Command {
	flags := &paramFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "compute",
		Short:   "Compute a step response and print it",
		GroupID: gBasic,
		Long: `Compute a step response offline and print a summary with checkpoint
read-outs at t = 0, τ, 2τ, ..., 5τ.

After one time constant τ = R·C the capacitor voltage has covered 63.2%
of its step while charging, or decayed to 36.8% of the supply voltage
while discharging. After five time constants the transient is settled
to well under 1%, which is why the window ends there.

With --json the full sampled waveform is printed instead, in the same
shape the server API returns.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := flags.parameters()
			if err != nil {
				return err
			}

			if asJSON {
				b, err := json.MarshalIndent(circuit.Compute(p), "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(b))
				return nil
			}

			cmd.Println(bold("%s", p.Summary()))
			cmd.Println(p.Mode.Label())
			cmd.Println()

			cmd.Println(bold("Checkpoints:"))
			cmd.Printf("  %-8s %12s %12s %12s %12s\n", "", "t (ms)", "U_C (V)", "Q (mC)", "I (mA)")
			for _, cp := range circuit.Checkpoints(p) {
				label := "t = 0"
				if cp.Multiple == 1 {
					label = "t = τ"
				} else if cp.Multiple > 1 {
					label = fmt.Sprintf("t = %dτ", cp.Multiple)
				}
				cmd.Printf("  %-8s %12.2f %12.3f %12.4f %s\n",
					label, cp.TimeMs, cp.VoltageVolts, cp.ChargeMC, signed("%12.3f", cp.CurrentMA))
			}
			cmd.Println()
			cmd.Println("Current sign encodes direction: positive charges the capacitor, negative discharges it.")

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full sampled waveform as JSON")

	return cmd
}
