package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rclab/rclab/pkg/circuit"
)

// paramFlags are the circuit parameter flags shared by the offline
// commands. Defaults match the stored-defaults defaults: 1 kΩ, 100 µF,
// 5 V, charging.
type paramFlags struct {
	resistance    float64
	capacitance   float64
	supplyVoltage float64
	mode          string
}

func (f *paramFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Float64VarP(&f.resistance, "resistance", "r", 1000, "resistance in ohms (100 to 10000)")
	fl.Float64VarP(&f.capacitance, "capacitance", "c", 100, "capacitance in microfarads (1 to 1000)")
	fl.Float64VarP(&f.supplyVoltage, "voltage", "u", 5.0, "supply voltage in volts (1 to 12)")
	fl.StringVarP(&f.mode, "mode", "m", string(circuit.Charging), "charging or discharging")
}

func (f *paramFlags) parameters() (circuit.Parameters, error) {
	mode, err := circuit.ParseMode(f.mode)
	if err != nil {
		return circuit.Parameters{}, err
	}

	p := circuit.Parameters{
		Resistance:    f.resistance,
		Capacitance:   f.capacitance,
		SupplyVoltage: f.supplyVoltage,
		Mode:          mode,
	}
	if err := p.Validate(); err != nil {
		return circuit.Parameters{}, err
	}

	return p, nil
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

// signed colors a current value by its direction: green into the
// capacitor, red out of it.
func signed(format string, v float64) string {
	switch {
	case v > 0:
		return color.New(color.Bold, color.FgGreen).Sprintf(format, v)
	case v < 0:
		return color.New(color.Bold, color.FgRed).Sprintf(format, v)
	default:
		return bold(format, v)
	}
}
