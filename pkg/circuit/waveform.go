package circuit

import "math"

const (
	// SampleCount is the fixed number of evenly spaced samples per
	// window. The resolution does not scale with τ, so the curves stay
	// equally smooth at every parameter setting.
	SampleCount = 500

	// WindowTimeConstants is how many time constants one window spans.
	// After 5τ the transient is settled to well under 1%.
	WindowTimeConstants = 5

	// MinWindowSeconds keeps the sampling window from collapsing to
	// zero width when τ is very small.
	MinWindowSeconds = 0.01
)

// Waveform is the sampled step response in display units. The four
// series are parallel and SampleCount long. Units:
// - Time: ms
// - Voltage: V
// - Charge: mC
// - Current: mA (sign encodes direction; discharge current is negative)
type Waveform struct {
	Params Parameters `json:"parameters"`

	TimeMs       []float64 `json:"timeMs"`
	VoltageVolts []float64 `json:"voltageVolts"`
	ChargeMC     []float64 `json:"chargeMilliCoulombs"`
	CurrentMA    []float64 `json:"currentMilliAmps"`

	// TauMs and WindowMs are carried for marker and axis placement.
	TauMs    float64 `json:"tauMs"`
	WindowMs float64 `json:"windowMs"`

	Summary   string `json:"summary"`
	ModeLabel string `json:"modeLabel"`
}

// Point is the response at a single instant, in display units.
type Point struct {
	TimeMs       float64 `json:"timeMs"`
	VoltageVolts float64 `json:"voltageVolts"`
	ChargeMC     float64 `json:"chargeMilliCoulombs"`
	CurrentMA    float64 `json:"currentMilliAmps"`
}

// Checkpoint is one closed-form evaluation at a whole multiple of τ,
// used for the educational read-outs of the CLI.
type Checkpoint struct {
	Multiple int `json:"multiple"`
	Point
}

func windowSeconds(tau float64) float64 {
	return math.Max(WindowTimeConstants*tau, MinWindowSeconds)
}

// eval returns voltage (V), charge (C) and current (A) at t seconds.
// SI units here; display conversion happens in the callers.
func eval(p Parameters, tau, farads, t float64) (u, q, i float64) {
	decay := math.Exp(-t / tau)
	if p.Mode == Discharging {
		u = p.SupplyVoltage * decay
		q = farads * u
		i = -(p.SupplyVoltage / p.Resistance) * decay
		return
	}
	u = p.SupplyVoltage * (1 - decay)
	q = farads * u
	i = (p.SupplyVoltage / p.Resistance) * decay
	return
}

// Compute samples the analytic step response over
// [0, max(5τ, MinWindowSeconds)].
//
// Precondition: R > 0 and C > 0 (Parameters.Validate at the boundaries
// guarantees a stricter range). Under that precondition the result is
// always finite: the window floor keeps the grid well-defined even for
// the smallest τ. Compute is pure; callers may share the result freely.
func Compute(p Parameters) *Waveform {
	tau := p.TimeConstant()
	window := windowSeconds(tau)
	farads := p.Farads()

	w := &Waveform{
		Params:       p,
		TimeMs:       make([]float64, SampleCount),
		VoltageVolts: make([]float64, SampleCount),
		ChargeMC:     make([]float64, SampleCount),
		CurrentMA:    make([]float64, SampleCount),
		TauMs:        tau * 1e3,
		WindowMs:     window * 1e3,
		Summary:      p.Summary(),
		ModeLabel:    p.Mode.Label(),
	}

	for i := 0; i < SampleCount; i++ {
		// t hits 0 and window exactly at the ends of the grid.
		t := window * float64(i) / float64(SampleCount-1)
		u, q, a := eval(p, tau, farads, t)
		w.TimeMs[i] = t * 1e3
		w.VoltageVolts[i] = u
		w.ChargeMC[i] = q * 1e3
		w.CurrentMA[i] = a * 1e3
	}

	return w
}

// At evaluates the response at a single instant t (seconds).
// Same precondition and units as Compute.
func At(p Parameters, t float64) Point {
	u, q, i := eval(p, p.TimeConstant(), p.Farads(), t)
	return Point{
		TimeMs:       t * 1e3,
		VoltageVolts: u,
		ChargeMC:     q * 1e3,
		CurrentMA:    i * 1e3,
	}
}

// Checkpoints evaluates the response at t = 0, τ, 2τ, …, 5τ.
func Checkpoints(p Parameters) []Checkpoint {
	tau := p.TimeConstant()
	cps := make([]Checkpoint, 0, WindowTimeConstants+1)
	for k := 0; k <= WindowTimeConstants; k++ {
		cps = append(cps, Checkpoint{
			Multiple: k,
			Point:    At(p, float64(k)*tau),
		})
	}
	return cps
}
