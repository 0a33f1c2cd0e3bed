// Package http serves the meta endpoints: liveness, readiness, build and gate info
package http

import (
	"context"
	"maps"
	"net/http"
	"time"

	"yamlgate/internal/core/version"
	"yamlgate/internal/modkit/httpkit"
)

// Pinger is a dependency readiness can probe
type Pinger interface {
	Ping(context.Context) error
}

// Deps are what the meta endpoints report on
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// PG is probed when it implements Pinger, nil means the audit log is off
	PG any
	// Grammars maps checked extensions to grammar names
	Grammars map[string]string

	// ProbeTimeout bounds each readiness probe, default 2s
	ProbeTimeout time.Duration
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.ProbeTimeout <= 0 {
		d.ProbeTimeout = 2 * time.Second
	}
	h := &handlers{deps: d, now: time.Now}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/gate", h.gate)
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

func (h *handlers) stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"yamlgate-api"`
	Started string `json:"started" example:"2026-01-05T09:00:00Z"`
	Now     string `json:"now"     example:"2026-01-05T09:05:00Z"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.deps.ServiceName, Started: h.stamp(h.deps.StartedAt), Now: h.stamp(h.now())}, nil
}

// Probe is one readiness check, Status is ok, fail, skipped or unknown
type Probe struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty"`
}

// ReadyResponse is ok when every probe passed or was skipped
// an unknown probe makes it degraded and a failed one fail
type ReadyResponse struct {
	Status string  `json:"status" example:"ok"`
	Probes []Probe `json:"checks"`
	Now    string  `json:"now"`
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness with dependency probes
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	probes := []Probe{h.probe(r.Context(), "pg", h.deps.PG)}

	status := "ok"
	for _, p := range probes {
		switch {
		case p.Status == "fail":
			status = "fail"
		case p.Status == "unknown" && status == "ok":
			status = "degraded"
		}
	}
	return ReadyResponse{Status: status, Probes: probes, Now: h.stamp(h.now())}, nil
}

func (h *handlers) probe(ctx context.Context, name string, dep any) Probe {
	if dep == nil {
		return Probe{Name: name, Status: "skipped"}
	}
	p, ok := dep.(Pinger)
	if !ok {
		return Probe{Name: name, Status: "unknown"}
	}
	ctx, cancel := context.WithTimeout(ctx, h.deps.ProbeTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		return Probe{Name: name, Status: "fail", Error: err.Error()}
	}
	return Probe{Name: name, Status: "ok"}
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(*http.Request) (any, error) { return version.Info(), nil }

// ServiceResponse is the uptime payload
type ServiceResponse struct {
	Name    string `json:"name"    example:"yamlgate-api"`
	Started string `json:"started" example:"2026-01-05T09:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service name and uptime in seconds
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h *handlers) service(*http.Request) (any, error) {
	up := h.now().Sub(h.deps.StartedAt)
	return ServiceResponse{Name: h.deps.ServiceName, Started: h.stamp(h.deps.StartedAt), Uptime: int64(up / time.Second)}, nil
}

// GateResponse lists the checked extensions
type GateResponse struct {
	Grammars map[string]string `json:"grammars"`
	Build    version.BuildInfo `json:"build"`
}

// swagger:route GET /meta/gate Meta metaGate
// @Summary Checked extensions and their grammars
// @Tags Meta
// @Produce json
// @Success 200 {object} GateResponse
// @Router /meta/gate [get]
func (h *handlers) gate(*http.Request) (any, error) {
	g := make(map[string]string, len(h.deps.Grammars))
	maps.Copy(g, h.deps.Grammars)
	return GateResponse{Grammars: g, Build: version.Info()}, nil
}
