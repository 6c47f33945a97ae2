package config

import (
	"github.com/sirupsen/logrus"

	"github.com/rclab/rclab/pkg/circuit"
)

// Config stores the default circuit parameters used when a request or
// command does not specify its own.
type Config interface {
	Resistance() float64
	Capacitance() float64
	SupplyVoltage() float64
	Mode() circuit.Mode

	SetResistance(float64)
	SetCapacitance(float64)
	SetSupplyVoltage(float64)
	SetMode(circuit.Mode)

	// Parameters assembles the stored defaults into one value.
	Parameters() circuit.Parameters

	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
