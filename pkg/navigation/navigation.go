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

package navigation

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
	"github.com/Mirantis/pelagia-dashboard/pkg/metrics"
)

// Registration binds notification name to the source of its visibility
type Registration struct {
	Name   string
	Source Source
}

// Sources are all known notification sources, nil sources are skipped
type Sources struct {
	PwdDisplayed    Source
	Telemetry       Source
	Motd            Source
	CallHome        Source
	StorageInsights Source
}

// Registrations returns notification registrations active for build variant
func Registrations(variant lcmcommon.BuildVariant, sources Sources) []Registration {
	candidates := []Registration{
		{Name: PwdDisplayedNotification, Source: sources.PwdDisplayed},
		{Name: TelemetryNotification, Source: sources.Telemetry},
		{Name: MotdNotification, Source: sources.Motd},
	}
	if variant == lcmcommon.BuildVariantIBM {
		candidates = append(candidates,
			Registration{Name: CallHomeNotification, Source: sources.CallHome},
			Registration{Name: StorageInsightsNotification, Source: sources.StorageInsights},
		)
	}
	registrations := make([]Registration, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Source != nil {
			registrations = append(registrations, candidate)
		}
	}
	return registrations
}

type notificationEvent struct {
	name    string
	visible bool
}

type State struct {
	Notifications    []string `json:"notifications"`
	Class            string   `json:"class"`
	HealthColor      string   `json:"healthColor,omitempty"`
	DisplayedSubMenu string   `json:"displayedSubMenu"`
	RightSidebarOpen bool     `json:"rightSidebarOpen"`
}

type Navigation struct {
	log           zerolog.Logger
	metrics       *metrics.DashboardMetrics
	registrations []Registration
	summarySource SummarySource

	mu               sync.RWMutex
	notifications    NotificationSet
	summary          *lcmcommon.Summary
	displayedSubMenu string
	rightSidebarOpen bool

	// subscriptions handle
	subsMu sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewNavigation(log zerolog.Logger, m *metrics.DashboardMetrics, summarySource SummarySource, registrations ...Registration) *Navigation {
	return &Navigation{
		log:           log,
		metrics:       m,
		summarySource: summarySource,
		registrations: registrations,
	}
}

func (n *Navigation) Registrations() []Registration {
	return n.registrations
}

func (n *Navigation) knownNotifications() []string {
	names := make([]string, len(n.registrations))
	for idx, reg := range n.registrations {
		names[idx] = reg.Name
	}
	return names
}

// Start subscribes to all sources, all updates are applied one by one from
// a single goroutine. Subscriptions are released with Stop.
func (n *Navigation) Start(ctx context.Context) error {
	n.subsMu.Lock()
	defer n.subsMu.Unlock()
	if n.cancel != nil {
		return errors.New("navigation is already started")
	}
	n.metrics.SetNotifications(n.Notifications(), n.knownNotifications())

	subsCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel
	events := make(chan notificationEvent)
	for _, reg := range n.registrations {
		n.log.Debug().Msgf("subscribing to '%s' notification source", reg.Name)
		n.wg.Add(1)
		go n.forward(subsCtx, reg.Name, reg.Source.Subscribe(subsCtx), events)
	}
	var summaries <-chan *lcmcommon.Summary
	if n.summarySource != nil {
		summaries = n.summarySource.Subscribe(subsCtx)
	}
	n.wg.Add(1)
	go n.loop(subsCtx, events, summaries)
	return nil
}

func (n *Navigation) forward(ctx context.Context, name string, values <-chan bool, events chan<- notificationEvent) {
	defer n.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case visible, ok := <-values:
			if !ok {
				n.log.Debug().Msgf("notification source '%s' is closed", name)
				return
			}
			select {
			case events <- notificationEvent{name: name, visible: visible}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (n *Navigation) loop(ctx context.Context, events <-chan notificationEvent, summaries <-chan *lcmcommon.Summary) {
	defer n.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-events:
			n.ShowTopNotification(event.name, event.visible)
		case summary, ok := <-summaries:
			if !ok {
				summaries = nil
				continue
			}
			n.mu.Lock()
			n.summary = summary
			n.mu.Unlock()
		}
	}
}

// Stop releases all subscriptions, waits until they are done and clears
// displayed notifications
func (n *Navigation) Stop() {
	n.subsMu.Lock()
	defer n.subsMu.Unlock()
	if n.cancel == nil {
		return
	}
	n.cancel()
	n.wg.Wait()
	n.cancel = nil
	// displayed notifications live only while sources are subscribed
	n.mu.Lock()
	n.notifications = NotificationSet{}
	n.mu.Unlock()
	n.metrics.SetNotifications(nil, n.knownNotifications())
	n.log.Debug().Msg("navigation subscriptions released")
}

// ShowTopNotification is the only entry point changing displayed notifications
func (n *Navigation) ShowTopNotification(name string, visible bool) {
	n.mu.Lock()
	before := n.notifications.Names()
	changed := n.notifications.Apply(name, visible)
	after := n.notifications.Names()
	n.mu.Unlock()
	if !changed {
		return
	}
	n.log.Debug().Msgf("top notification '%s' visible=%v, displayed %d", name, visible, len(after))
	lcmcommon.ShowObjectDiff(n.log, before, after)
	n.metrics.SetNotifications(after, n.knownNotifications())
}

func (n *Navigation) Notifications() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.notifications.Names()
}

// Class is a host css class sized by displayed notifications count
func (n *Navigation) Class() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return TopNotificationClass(n.notifications.Len())
}

func (n *Navigation) SetSummary(summary *lcmcommon.Summary) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.summary = summary
}

// BlockHealthColor returns color override for block menu, false means no override
func (n *Navigation) BlockHealthColor() (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return blockHealthColor(n.summary)
}

func blockHealthColor(summary *lcmcommon.Summary) (string, bool) {
	if summary == nil || summary.RbdMirroring == nil {
		return "", false
	}
	if summary.RbdMirroring.Errors > 0 {
		return lcmcommon.RbdMirroringErrorsColor, true
	}
	if summary.RbdMirroring.Warnings > 0 {
		return lcmcommon.RbdMirroringWarningsColor, true
	}
	return "", false
}

// ToggleSubMenu opens submenu or closes it if already opened, only one is open at a time
func (n *Navigation) ToggleSubMenu(menu string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.displayedSubMenu == menu {
		n.displayedSubMenu = ""
	} else {
		n.displayedSubMenu = menu
	}
	return n.displayedSubMenu
}

func (n *Navigation) DisplayedSubMenu() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.displayedSubMenu
}

func (n *Navigation) ToggleRightSidebar() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rightSidebarOpen = !n.rightSidebarOpen
	return n.rightSidebarOpen
}

func (n *Navigation) RightSidebarOpen() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.rightSidebarOpen
}

func (n *Navigation) State() State {
	n.mu.RLock()
	defer n.mu.RUnlock()
	color, _ := blockHealthColor(n.summary)
	return State{
		Notifications:    n.notifications.Names(),
		Class:            TopNotificationClass(n.notifications.Len()),
		HealthColor:      color,
		DisplayedSubMenu: n.displayedSubMenu,
		RightSidebarOpen: n.rightSidebarOpen,
	}
}
