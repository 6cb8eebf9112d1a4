// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	authEvents             *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailability.With(tags).Set(value)

	return nil
}

// IncAuthEvent counts authentication and verification outcomes, tags must
// carry the "event" and "outcome" labels
func (m *Monitor) IncAuthEvent(tags map[string]string) error {
	if m.authEvents == nil {
		return fmt.Errorf("metric not instantiated")
	}

	c, err := m.authEvents.GetMetricWith(tags)
	if err != nil {
		return err
	}

	c.Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	histograms := make([]*prometheus.HistogramVec, 0)

	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
			ConstLabels: prometheus.Labels{
				"service": m.service,
			},
		},
		[]string{"route", "status"},
	)

	histograms = append(histograms, m.responseTime)

	for _, histogram := range histograms {
		if err := prometheus.Register(histogram); err != nil {
			m.logger.Debugf("metric already registered: %v", err)
		}
	}
}

func (m *Monitor) registerGauges() {
	gauges := make([]*prometheus.GaugeVec, 0)

	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
			ConstLabels: prometheus.Labels{
				"service": m.service,
			},
		},
		[]string{"component"},
	)

	gauges = append(gauges, m.dependencyAvailability)

	for _, gauge := range gauges {
		if err := prometheus.Register(gauge); err != nil {
			m.logger.Debugf("metric already registered: %v", err)
		}
	}
}

func (m *Monitor) registerCounters() {
	m.authEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_events_total",
			Help: "authentication and email verification outcomes",
			ConstLabels: prometheus.Labels{
				"service": m.service,
			},
		},
		[]string{"event", "outcome"},
	)

	if err := prometheus.Register(m.authEvents); err != nil {
		m.logger.Debugf("metric already registered: %v", err)
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
