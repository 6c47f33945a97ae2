package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rclab/rclab/pkg/circuit"
	"github.com/rclab/rclab/pkg/utils/ptr"
)

var (
	// Defaults mirror the initial slider positions of the visualizer
	// frontend: 1 kΩ, 100 µF, 5 V, charging.
	defaultFileConfig = &RawFileConfig{
		ResistanceOhms:         ptr.To(1000.0),
		CapacitanceMicrofarads: ptr.To(100.0),
		SupplyVoltageVolts:     ptr.To(5.0),
		Mode:                   ptr.To(string(circuit.Charging)),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = defaultFileConfig
	}

	f := &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}

	return f
}

// RawFileConfig is the on-disk shape. Fields are pointers so an absent
// key falls back to the package default instead of a zero.
type RawFileConfig struct {
	ResistanceOhms         *float64 `json:"resistanceOhms,omitempty"`
	CapacitanceMicrofarads *float64 `json:"capacitanceMicrofarads,omitempty"`
	SupplyVoltageVolts     *float64 `json:"supplyVoltageVolts,omitempty"`
	Mode                   *string  `json:"mode,omitempty"`
}

func NewRawFileConfigFromConfig(c Config) (*RawFileConfig, error) {
	if c == nil {
		return nil, pkgerrors.New("config is nil")
	}

	rawConfig := &RawFileConfig{
		ResistanceOhms:         ptr.To(c.Resistance()),
		CapacitanceMicrofarads: ptr.To(c.Capacitance()),
		SupplyVoltageVolts:     ptr.To(c.SupplyVoltage()),
		Mode:                   ptr.To(string(c.Mode())),
	}

	return rawConfig, nil
}

func (f *File) Resistance() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var r float64

	if f.c.ResistanceOhms != nil {
		r = *f.c.ResistanceOhms
	} else {
		r = *defaultFileConfig.ResistanceOhms
	}

	return r
}

func (f *File) Capacitance() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var c float64

	if f.c.CapacitanceMicrofarads != nil {
		c = *f.c.CapacitanceMicrofarads
	} else {
		c = *defaultFileConfig.CapacitanceMicrofarads
	}

	return c
}

func (f *File) SupplyVoltage() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var u float64

	if f.c.SupplyVoltageVolts != nil {
		u = *f.c.SupplyVoltageVolts
	} else {
		u = *defaultFileConfig.SupplyVoltageVolts
	}

	return u
}

func (f *File) Mode() circuit.Mode {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	raw := *defaultFileConfig.Mode
	if f.c.Mode != nil {
		raw = *f.c.Mode
	}

	// A hand-edited file may carry junk; fall back to the default mode
	// rather than propagating an invalid one.
	mode, err := circuit.ParseMode(raw)
	if err != nil {
		logrus.Warnf("invalid mode %q in config, using %q", raw, *defaultFileConfig.Mode)
		return circuit.Mode(*defaultFileConfig.Mode)
	}

	return mode
}

// Parameters assembles the stored defaults into one value.
func (f *File) Parameters() circuit.Parameters {
	return circuit.Parameters{
		Resistance:    f.Resistance(),
		Capacitance:   f.Capacitance(),
		SupplyVoltage: f.SupplyVoltage(),
		Mode:          f.Mode(),
	}
}

func (f *File) SetResistance(r float64) {
	if f.c == nil {
		panic("config is nil")
	}

	if r < circuit.MinResistanceOhms || r > circuit.MaxResistanceOhms {
		panic("resistance out of range")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.ResistanceOhms = &r
}

func (f *File) SetCapacitance(c float64) {
	if f.c == nil {
		panic("config is nil")
	}

	if c < circuit.MinCapacitanceMicrofarads || c > circuit.MaxCapacitanceMicrofarads {
		panic("capacitance out of range")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.CapacitanceMicrofarads = &c
}

func (f *File) SetSupplyVoltage(u float64) {
	if f.c == nil {
		panic("config is nil")
	}

	if u < circuit.MinSupplyVoltageVolts || u > circuit.MaxSupplyVoltageVolts {
		panic("supply voltage out of range")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.SupplyVoltageVolts = &u
}

func (f *File) SetMode(m circuit.Mode) {
	if f.c == nil {
		panic("config is nil")
	}

	if !m.Valid() {
		panic("unknown mode")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	s := string(m)
	f.c.Mode = &s
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using json.Decoder will
	// not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}
	configString := string(b)

	if strings.TrimSpace(configString) == "" {
		// If the file is empty, return the empty config.
		// Do not make f.c a nil.
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	err = json.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	err = enc.Encode(f.c)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"resistanceOhms":         f.Resistance(),
		"capacitanceMicrofarads": f.Capacitance(),
		"supplyVoltageVolts":     f.SupplyVoltage(),
		"mode":                   f.Mode(),
	}
}
