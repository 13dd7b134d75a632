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

package multisite

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Mirantis/pelagia-dashboard/pkg/backend"
	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	rgwDaemonPath   = "api/rgw/daemon"
	daemonNameParam = "daemon_name"
)

// DaemonService keeps rgw daemon all daemon scoped requests are sent to
type DaemonService struct {
	log    zerolog.Logger
	client *backend.Client

	mu       sync.Mutex
	selected *lcmcommon.RgwDaemon
}

func NewDaemonService(log zerolog.Logger, client *backend.Client) *DaemonService {
	return &DaemonService{log: log, client: client}
}

func (d *DaemonService) List(ctx context.Context) ([]lcmcommon.RgwDaemon, error) {
	body, err := d.client.Do(ctx, http.MethodGet, rgwDaemonPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rgw daemons")
	}
	daemons := []lcmcommon.RgwDaemon{}
	if err := json.Unmarshal(body, &daemons); err != nil {
		return nil, errors.Wrap(err, "failed to decode rgw daemons list")
	}
	return daemons, nil
}

// Select makes daemon with specified id selected
func (d *DaemonService) Select(ctx context.Context, id string) (lcmcommon.RgwDaemon, error) {
	daemons, err := d.List(ctx)
	if err != nil {
		return lcmcommon.RgwDaemon{}, err
	}
	for _, daemon := range daemons {
		if daemon.ID == id {
			d.setSelected(daemon)
			return daemon, nil
		}
	}
	return lcmcommon.RgwDaemon{}, errors.Errorf("rgw daemon '%s' is not found", id)
}

func (d *DaemonService) setSelected(daemon lcmcommon.RgwDaemon) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selected = &daemon
	d.log.Debug().Msgf("selected rgw daemon '%s' (zone '%s')", daemon.ID, daemon.ZoneName)
}

// Selected returns selected daemon, if nothing is selected yet the default
// daemon is picked or the first one if there is no default
func (d *DaemonService) Selected(ctx context.Context) (lcmcommon.RgwDaemon, error) {
	d.mu.Lock()
	selected := d.selected
	d.mu.Unlock()
	if selected != nil {
		return *selected, nil
	}
	daemons, err := d.List(ctx)
	if err != nil {
		return lcmcommon.RgwDaemon{}, err
	}
	if len(daemons) == 0 {
		return lcmcommon.RgwDaemon{}, errors.New("no rgw daemons found")
	}
	daemon := daemons[0]
	for _, candidate := range daemons {
		if candidate.Default {
			daemon = candidate
			break
		}
	}
	d.setSelected(daemon)
	return daemon, nil
}

// Request prepares daemon scoped params and passes them to next, which
// adds own params and issues the request
func (d *DaemonService) Request(ctx context.Context, next func(params url.Values) (jsoniter.RawMessage, error)) (jsoniter.RawMessage, error) {
	daemon, err := d.Selected(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select rgw daemon")
	}
	params := url.Values{}
	params.Set(daemonNameParam, daemon.ID)
	return next(params)
}
