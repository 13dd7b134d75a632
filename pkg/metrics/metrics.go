/*
Copyright 2025 Mirantis IT.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pelagia_dashboard"

// DashboardMetrics keeps collectors for dashboard components, nil
// receiver is allowed and means metrics are disabled
type DashboardMetrics struct {
	topNotifications   prometheus.Gauge
	notificationActive *prometheus.GaugeVec
	multisiteRequests  *prometheus.CounterVec
}

func NewDashboardMetrics(reg prometheus.Registerer) *DashboardMetrics {
	m := &DashboardMetrics{
		topNotifications: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "top_notifications",
			Help:      "Number of currently displayed top notifications.",
		}),
		notificationActive: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "notification_active",
			Help:      "Whether top notification is displayed (1) or not (0).",
		}, []string{"name"}),
		multisiteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "multisite_requests_total",
			Help:      "Requests issued to RGW multisite API by operation and response code.",
		}, []string{"operation", "code"}),
	}
	if reg != nil {
		reg.MustRegister(m.topNotifications, m.notificationActive, m.multisiteRequests)
	}
	return m
}

// SetNotifications updates gauges from displayed notifications, known are
// all registered notification names to reset hidden ones
func (m *DashboardMetrics) SetNotifications(displayed, known []string) {
	if m == nil {
		return
	}
	m.topNotifications.Set(float64(len(displayed)))
	for _, name := range known {
		m.notificationActive.WithLabelValues(name).Set(0)
	}
	for _, name := range displayed {
		m.notificationActive.WithLabelValues(name).Set(1)
	}
}

// ObserveMultisiteRequest counts request, zero code means transport error
func (m *DashboardMetrics) ObserveMultisiteRequest(operation string, code int) {
	if m == nil {
		return
	}
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	m.multisiteRequests.WithLabelValues(operation, label).Inc()
}
