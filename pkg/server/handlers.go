package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rclab/rclab/pkg/chart"
	"github.com/rclab/rclab/pkg/circuit"
	"github.com/rclab/rclab/pkg/config"
	"github.com/rclab/rclab/pkg/events"
	"github.com/rclab/rclab/pkg/version"
)

// paramsFromQuery overlays the r/c/u0/mode query parameters onto the
// stored defaults and validates the result. Absent parameters keep
// their default; a malformed or out-of-range one is an error.
func paramsFromQuery(c *gin.Context) (circuit.Parameters, error) {
	p := conf.Parameters()

	if s, ok := c.GetQuery("r"); ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p, fmt.Errorf("invalid resistance %q: %v", s, err)
		}
		p.Resistance = v
	}
	if s, ok := c.GetQuery("c"); ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p, fmt.Errorf("invalid capacitance %q: %v", s, err)
		}
		p.Capacitance = v
	}
	if s, ok := c.GetQuery("u0"); ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p, fmt.Errorf("invalid supply voltage %q: %v", s, err)
		}
		p.SupplyVoltage = v
	}
	if s, ok := c.GetQuery("mode"); ok {
		m, err := circuit.ParseMode(s)
		if err != nil {
			return p, err
		}
		p.Mode = m
	}

	if err := p.Validate(); err != nil {
		return p, err
	}

	return p, nil
}

func getIndex(c *gin.Context) {
	p, err := paramsFromQuery(c)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	w := circuit.Compute(p)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := chart.RenderPage(w, c.Writer); err != nil {
		logrus.Errorf("getIndex failed: %v", err)
		_ = c.AbortWithError(http.StatusInternalServerError, err)
	}
}

func getWaveform(c *gin.Context) {
	p, err := paramsFromQuery(c)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	c.IndentedJSON(http.StatusOK, circuit.Compute(p))
}

func getDefaults(c *gin.Context) {
	fc, err := config.NewRawFileConfigFromConfig(conf)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.IndentedJSON(http.StatusOK, fc)
}

func setDefaults(c *gin.Context) {
	var raw config.RawFileConfig
	if err := c.BindJSON(&raw); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	// Overlay the request onto the current defaults; fields left out of
	// the payload stay as they are.
	p := conf.Parameters()
	if raw.ResistanceOhms != nil {
		p.Resistance = *raw.ResistanceOhms
	}
	if raw.CapacitanceMicrofarads != nil {
		p.Capacitance = *raw.CapacitanceMicrofarads
	}
	if raw.SupplyVoltageVolts != nil {
		p.SupplyVoltage = *raw.SupplyVoltageVolts
	}
	if raw.Mode != nil {
		m, err := circuit.ParseMode(*raw.Mode)
		if err != nil {
			c.IndentedJSON(http.StatusBadRequest, err.Error())
			_ = c.AbortWithError(http.StatusBadRequest, err)
			return
		}
		p.Mode = m
	}

	if err := p.Validate(); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	conf.SetResistance(p.Resistance)
	conf.SetCapacitance(p.Capacitance)
	conf.SetSupplyVoltage(p.SupplyVoltage)
	conf.SetMode(p.Mode)
	if err := conf.Save(); err != nil {
		logrus.Errorf("saveConfig failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	logrus.WithFields(conf.LogrusFields()).Infof("defaults updated")

	sseHub.Publish(events.ParamsChanged, events.ParamsChangedEvent{
		Parameters: p,
		TauMs:      p.TimeConstant() * 1e3,
		Summary:    p.Summary(),
		Ts:         time.Now().Unix(),
	})

	c.IndentedJSON(http.StatusCreated, fmt.Sprintf("defaults updated: %s", p.Summary()))
}

func getEvents(c *gin.Context) {
	ch := sseHub.Subscribe()
	defer sseHub.Unsubscribe(ch)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, string(ev.Data))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}
