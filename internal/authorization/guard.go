// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
)

const (
	LoginPath    = "/login/"
	LeadListPath = "/leads/"
	ProfilePath  = "/profile/"
)

// Outcome is the verdict of a guard.
type Outcome int

const (
	Allow Outcome = iota
	// RedirectDeny sends the caller somewhere it is allowed to be.
	RedirectDeny
	// NotFoundDeny hides the existence of the resource.
	NotFoundDeny
)

type Decision struct {
	Outcome  Outcome
	Location string
}

func (d Decision) Allowed() bool {
	return d.Outcome == Allow
}

// NotFound is the decision for a resource outside the caller's scope. It is
// rendered exactly like a genuinely missing row.
func NotFound() Decision {
	return Decision{Outcome: NotFoundDeny}
}

var _ GuardInterface = (*Guard)(nil)

type Guard struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Decide evaluates a role requirement for the request. Anonymous callers are
// sent to the login page with a return address, callers with the wrong role
// are sent to a listing they can use.
func (g *Guard) Decide(r *http.Request, pred Predicate) Decision {
	_, span := g.tracer.Start(r.Context(), "authorization.Guard.Decide")
	defer span.End()

	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		return Decision{
			Outcome:  RedirectDeny,
			Location: LoginPath + "?next=" + url.QueryEscape(r.URL.RequestURI()),
		}
	}

	if pred(p) {
		return Decision{Outcome: Allow}
	}

	g.logger.Security().AuthzFailure(p.AccountID, r.Method+" "+r.URL.Path)

	return Decision{Outcome: RedirectDeny, Location: fallbackLocation(p)}
}

// Require wraps a handler with a role requirement.
func (g *Guard) Require(pred Predicate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := g.Decide(r, pred)
			if !d.Allowed() {
				Respond(w, r, d)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Respond renders a deny decision.
func Respond(w http.ResponseWriter, r *http.Request, d Decision) {
	switch d.Outcome {
	case RedirectDeny:
		http.Redirect(w, r, d.Location, http.StatusFound)
	case NotFoundDeny:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(
			map[string]any{
				"status":  http.StatusNotFound,
				"message": "not found",
			},
		)
	}
}

// a caller with no lead listing would loop on /leads/
func fallbackLocation(p *Principal) string {
	if WorksLeads(p) {
		return LeadListPath
	}
	return ProfilePath
}

func NewGuard(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Guard {
	g := new(Guard)

	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}
