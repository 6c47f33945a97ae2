package circuit

import (
	"math"
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{
			name:  "charging",
			input: "charging",
			want:  Charging,
		},
		{
			name:  "discharging",
			input: "discharging",
			want:  Discharging,
		},
		{
			name:  "mixed case",
			input: "Charging",
			want:  Charging,
		},
		{
			name:  "surrounding whitespace",
			input: "  discharging\n",
			want:  Discharging,
		},
		{
			name:    "unknown mode",
			input:   "idle",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParametersValidate(t *testing.T) {
	valid := Parameters{
		Resistance:    1000,
		Capacitance:   100,
		SupplyVoltage: 5.0,
		Mode:          Charging,
	}

	tests := []struct {
		name    string
		mutate  func(p *Parameters)
		wantErr string
	}{
		{
			name:   "defaults valid",
			mutate: func(p *Parameters) {},
		},
		{
			name:   "lower bounds valid",
			mutate: func(p *Parameters) { p.Resistance = 100; p.Capacitance = 1; p.SupplyVoltage = 1.0 },
		},
		{
			name:   "upper bounds valid",
			mutate: func(p *Parameters) { p.Resistance = 10000; p.Capacitance = 1000; p.SupplyVoltage = 12.0 },
		},
		{
			name:    "resistance too low",
			mutate:  func(p *Parameters) { p.Resistance = 99 },
			wantErr: "resistance",
		},
		{
			name:    "resistance too high",
			mutate:  func(p *Parameters) { p.Resistance = 10001 },
			wantErr: "resistance",
		},
		{
			name:    "capacitance zero",
			mutate:  func(p *Parameters) { p.Capacitance = 0 },
			wantErr: "capacitance",
		},
		{
			name:    "voltage too high",
			mutate:  func(p *Parameters) { p.SupplyVoltage = 24 },
			wantErr: "supply voltage",
		},
		{
			name:    "unknown mode",
			mutate:  func(p *Parameters) { p.Mode = "pausing" },
			wantErr: "mode",
		},
		{
			name:    "empty mode",
			mutate:  func(p *Parameters) { p.Mode = "" },
			wantErr: "mode",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error mentioning %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestTimeConstant(t *testing.T) {
	p := Parameters{Resistance: 1000, Capacitance: 100}
	if got := p.TimeConstant(); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("TimeConstant() = %v, want 0.1", got)
	}

	p = Parameters{Resistance: 10000, Capacitance: 1000}
	if got := p.TimeConstant(); math.Abs(got-10) > 1e-9 {
		t.Errorf("TimeConstant() = %v, want 10", got)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		p    Parameters
		want string
	}{
		{
			name: "default parameters",
			p:    Parameters{Resistance: 1000, Capacitance: 100, SupplyVoltage: 5.0, Mode: Charging},
			want: "R = 1000 Ω, C = 100 µF, U₀ = 5.0 V → time constant τ = 100.00 ms, window t = 0 to 500.00 ms",
		},
		{
			name: "small tau hits the window floor",
			p:    Parameters{Resistance: 100, Capacitance: 1, SupplyVoltage: 1.0, Mode: Discharging},
			want: "R = 100 Ω, C = 1 µF, U₀ = 1.0 V → time constant τ = 0.10 ms, window t = 0 to 10.00 ms",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModeLabel(t *testing.T) {
	if got := Charging.Label(); !strings.Contains(got, "charging") {
		t.Errorf("Charging.Label() = %q, want it to mention charging", got)
	}
	if got := Discharging.Label(); !strings.Contains(got, "discharging") {
		t.Errorf("Discharging.Label() = %q, want it to mention discharging", got)
	}
}
