package client

import (
	"encoding/json"
	"net/url"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"github.com/rclab/rclab/pkg/circuit"
	"github.com/rclab/rclab/pkg/config"
)

func queryFromParams(p circuit.Parameters) url.Values {
	v := url.Values{}
	v.Set("r", strconv.FormatFloat(p.Resistance, 'f', -1, 64))
	v.Set("c", strconv.FormatFloat(p.Capacitance, 'f', -1, 64))
	v.Set("u0", strconv.FormatFloat(p.SupplyVoltage, 'f', -1, 64))
	v.Set("mode", string(p.Mode))
	return v
}

// GetWaveform computes a waveform on the server. A nil p uses the
// server's stored defaults.
func (c *Client) GetWaveform(p *circuit.Parameters) (*circuit.Waveform, error) {
	path := "/api/v1/waveform"
	if p != nil {
		path += "?" + queryFromParams(*p).Encode()
	}

	ret, err := c.Get(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get waveform")
	}

	var w circuit.Waveform
	if err := json.Unmarshal([]byte(ret), &w); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal waveform")
	}

	return &w, nil
}

// GetDefaults fetches the server's stored default parameters.
func (c *Client) GetDefaults() (*config.RawFileConfig, error) {
	ret, err := c.Get("/api/v1/defaults")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get defaults")
	}

	var raw config.RawFileConfig
	if err := json.Unmarshal([]byte(ret), &raw); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal defaults")
	}

	return &raw, nil
}

// SetDefaults updates the server's stored default parameters. Nil
// fields in raw are left unchanged on the server. The returned string
// is the server's human-readable confirmation.
func (c *Client) SetDefaults(raw *config.RawFileConfig) (string, error) {
	payload, err := json.Marshal(raw)
	if err != nil {
		return "", err
	}
	return c.Put("/api/v1/defaults", string(payload))
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/api/v1/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}
	// Remove "" around JSON string. I don't want to use a JSON decoder just for this.
	ret = ret[1 : len(ret)-1] // remove the surrounding quotes
	return ret, nil
}
