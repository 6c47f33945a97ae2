package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rclab/rclab/pkg/circuit"
)

func TestNewFileMissingFileUsesDefaults(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("NewFile on missing file: %v", err)
	}

	if got := f.Resistance(); got != 1000 {
		t.Errorf("Resistance() = %v, want 1000", got)
	}
	if got := f.Capacitance(); got != 100 {
		t.Errorf("Capacitance() = %v, want 100", got)
	}
	if got := f.SupplyVoltage(); got != 5.0 {
		t.Errorf("SupplyVoltage() = %v, want 5", got)
	}
	if got := f.Mode(); got != circuit.Charging {
		t.Errorf("Mode() = %v, want %v", got, circuit.Charging)
	}
}

func TestNewFileEmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile on empty file: %v", err)
	}
	if got := f.Resistance(); got != 1000 {
		t.Errorf("Resistance() = %v, want 1000", got)
	}
}

func TestNewFileMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := NewFile(path); err == nil {
		t.Fatalf("NewFile on malformed file should fail")
	}
}

func TestFileSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rclab.json")

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	f.SetResistance(2200)
	f.SetCapacitance(47)
	f.SetSupplyVoltage(9.0)
	f.SetMode(circuit.Discharging)

	if err := f.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	g, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile after save: %v", err)
	}

	want := circuit.Parameters{
		Resistance:    2200,
		Capacitance:   47,
		SupplyVoltage: 9.0,
		Mode:          circuit.Discharging,
	}
	if got := g.Parameters(); got != want {
		t.Errorf("Parameters() = %+v, want %+v", got, want)
	}
}

func TestFilePartialFileFallsBackPerField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"resistanceOhms": 4700}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	if got := f.Resistance(); got != 4700 {
		t.Errorf("Resistance() = %v, want 4700", got)
	}
	// Unset fields keep the package defaults.
	if got := f.Capacitance(); got != 100 {
		t.Errorf("Capacitance() = %v, want 100", got)
	}
	if got := f.Mode(); got != circuit.Charging {
		t.Errorf("Mode() = %v, want %v", got, circuit.Charging)
	}
}

func TestFileInvalidModeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mode.json")
	if err := os.WriteFile(path, []byte(`{"mode": "exploding"}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if got := f.Mode(); got != circuit.Charging {
		t.Errorf("Mode() = %v, want fallback %v", got, circuit.Charging)
	}
}

func TestFileSetterPanicsOutOfRange(t *testing.T) {
	f := NewFileFromConfig(&RawFileConfig{}, "")

	assertPanics := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s should panic", name)
			}
		}()
		fn()
	}

	assertPanics("SetResistance(0)", func() { f.SetResistance(0) })
	assertPanics("SetResistance(1e6)", func() { f.SetResistance(1e6) })
	assertPanics("SetCapacitance(0)", func() { f.SetCapacitance(0) })
	assertPanics("SetSupplyVoltage(0)", func() { f.SetSupplyVoltage(0) })
	assertPanics("SetMode(bogus)", func() { f.SetMode("bogus") })
}

func TestNewRawFileConfigFromConfig(t *testing.T) {
	f := NewFileFromConfig(nil, "")

	raw, err := NewRawFileConfigFromConfig(f)
	if err != nil {
		t.Fatalf("NewRawFileConfigFromConfig: %v", err)
	}
	if raw.ResistanceOhms == nil || *raw.ResistanceOhms != 1000 {
		t.Errorf("ResistanceOhms = %v, want 1000", raw.ResistanceOhms)
	}
	if raw.Mode == nil || *raw.Mode != string(circuit.Charging) {
		t.Errorf("Mode = %v, want %q", raw.Mode, circuit.Charging)
	}

	if _, err := NewRawFileConfigFromConfig(nil); err == nil {
		t.Errorf("NewRawFileConfigFromConfig(nil) should fail")
	}
}
