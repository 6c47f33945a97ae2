package circuit

import (
	"fmt"
	"strings"
)

// Mode selects which step response is computed.
type Mode string

const (
	// Charging starts from an uncharged capacitor; the voltage
	// asymptotically approaches the supply voltage.
	Charging Mode = "charging"
	// Discharging starts from a capacitor charged to the supply
	// voltage; the voltage asymptotically approaches zero.
	Discharging Mode = "discharging"
)

// Parameter bounds accepted at the boundaries (HTTP API, CLI, config).
// They match the control ranges of the visualizer frontend. Compute
// itself stays well-defined for any positive R and C; these bounds are
// what user input is checked against.
const (
	MinResistanceOhms = 100.0
	MaxResistanceOhms = 10000.0

	MinCapacitanceMicrofarads = 1.0
	MaxCapacitanceMicrofarads = 1000.0

	MinSupplyVoltageVolts = 1.0
	MaxSupplyVoltageVolts = 12.0
)

// Parameters describes one RC series circuit and the selected mode.
// Units:
// - Resistance: Ω
// - Capacitance: µF (the frontend unit; converted to F internally)
// - SupplyVoltage: V
type Parameters struct {
	Resistance    float64 `json:"resistanceOhms"`
	Capacitance   float64 `json:"capacitanceMicrofarads"`
	SupplyVoltage float64 `json:"supplyVoltageVolts"`
	Mode          Mode    `json:"mode"`
}

// ParseMode converts user input to a Mode. Matching is
// case-insensitive; anything but the two mode names is an error.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Charging:
		return Charging, nil
	case Discharging:
		return Discharging, nil
	default:
		return "", fmt.Errorf("mode must be %q or %q, got %q", Charging, Discharging, s)
	}
}

// Valid reports whether m is one of the two known modes.
func (m Mode) Valid() bool {
	return m == Charging || m == Discharging
}

// Label is the mode caption shown next to the charts.
func (m Mode) Label() string {
	if m == Discharging {
		return "Mode: discharging (source disconnected)"
	}
	return "Mode: charging (step input applied)"
}

// Farads returns the capacitance converted from µF to F.
func (p Parameters) Farads() float64 {
	return p.Capacitance * 1e-6
}

// TimeConstant returns τ = R·C in seconds.
func (p Parameters) TimeConstant() float64 {
	return p.Resistance * p.Farads()
}

// Validate checks p against the boundary ranges. A nil return
// guarantees Compute's precondition (R > 0, C > 0) and then some.
func (p Parameters) Validate() error {
	if p.Resistance < MinResistanceOhms || p.Resistance > MaxResistanceOhms {
		return fmt.Errorf("resistance must be between %g and %g Ω, got %g", MinResistanceOhms, MaxResistanceOhms, p.Resistance)
	}
	if p.Capacitance < MinCapacitanceMicrofarads || p.Capacitance > MaxCapacitanceMicrofarads {
		return fmt.Errorf("capacitance must be between %g and %g µF, got %g", MinCapacitanceMicrofarads, MaxCapacitanceMicrofarads, p.Capacitance)
	}
	if p.SupplyVoltage < MinSupplyVoltageVolts || p.SupplyVoltage > MaxSupplyVoltageVolts {
		return fmt.Errorf("supply voltage must be between %g and %g V, got %g", MinSupplyVoltageVolts, MaxSupplyVoltageVolts, p.SupplyVoltage)
	}
	if !p.Mode.Valid() {
		return fmt.Errorf("mode must be %q or %q, got %q", Charging, Discharging, p.Mode)
	}
	return nil
}

// Summary is the info-panel line shown above the charts, mirroring the
// frontend's fixed display precision.
func (p Parameters) Summary() string {
	tau := p.TimeConstant()
	return fmt.Sprintf("R = %.0f Ω, C = %.0f µF, U₀ = %.1f V → time constant τ = %.2f ms, window t = 0 to %.2f ms",
		p.Resistance, p.Capacitance, p.SupplyVoltage, tau*1e3, windowSeconds(tau)*1e3)
}
