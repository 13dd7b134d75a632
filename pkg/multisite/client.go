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
	"fmt"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/Mirantis/pelagia-dashboard/pkg/backend"
	"github.com/Mirantis/pelagia-dashboard/pkg/metrics"
)

const (
	uiAPIPath = "ui-api/rgw/multisite"
	apiPath   = "api/rgw/multisite"
)

// operation names used in logs and metrics
const (
	OperationMigrate          = "migrate"
	OperationSyncStatus       = "sync-status"
	OperationStatus           = "status"
	OperationSetUpReplication = "setup-replication"
)

// Client is a thin facade over rgw multisite api, responses are returned as is
type Client struct {
	log     zerolog.Logger
	backend *backend.Client
	daemons *DaemonService
	metrics *metrics.DashboardMetrics
}

func NewClient(log zerolog.Logger, backendClient *backend.Client, daemons *DaemonService, m *metrics.DashboardMetrics) *Client {
	if daemons == nil {
		daemons = NewDaemonService(log, backendClient)
	}
	return &Client{log: log, backend: backendClient, daemons: daemons, metrics: m}
}

func (c *Client) Daemons() *DaemonService {
	return c.daemons
}

func (c *Client) do(ctx context.Context, operation, method, path string, params url.Values) (jsoniter.RawMessage, error) {
	c.log.Debug().Msgf("%s: %s %s", operation, method, path)
	body, err := c.backend.Do(ctx, method, path, params)
	if err != nil {
		c.metrics.ObserveMultisiteRequest(operation, backend.StatusCode(err))
		return nil, err
	}
	c.metrics.ObserveMultisiteRequest(operation, http.StatusOK)
	return body, nil
}

// Migrate converts single site deployment into multisite master zone
func (c *Client) Migrate(ctx context.Context, realm Realm, zonegroup Zonegroup, zone Zone) (jsoniter.RawMessage, error) {
	return c.daemons.Request(ctx, func(params url.Values) (jsoniter.RawMessage, error) {
		params.Set("realm_name", realm.Name)
		params.Set("zonegroup_name", zonegroup.Name)
		params.Set("zone_name", zone.Name)
		params.Set("zonegroup_endpoints", zonegroup.Endpoints)
		params.Set("zone_endpoints", zone.Endpoints)
		params.Set("access_key", zone.SystemKey.AccessKey)
		params.Set("secret_key", zone.SystemKey.SecretKey)
		return c.do(ctx, OperationMigrate, http.MethodPut, fmt.Sprintf("%s/migrate", uiAPIPath), params)
	})
}

func (c *Client) GetSyncStatus(ctx context.Context) (jsoniter.RawMessage, error) {
	return c.do(ctx, OperationSyncStatus, http.MethodGet, fmt.Sprintf("%s/sync_status", apiPath), nil)
}

func (c *Client) Status(ctx context.Context) (jsoniter.RawMessage, error) {
	return c.do(ctx, OperationStatus, http.MethodGet, fmt.Sprintf("%s/status", uiAPIPath), nil)
}

// SetUpMultisiteReplication configures replication with a new zone, cluster
// fsid is passed only when cluster is specified
func (c *Client) SetUpMultisiteReplication(ctx context.Context, realmName, zonegroupName, zonegroupEndpoints, zoneName, zoneEndpoints, username, cluster string) (jsoniter.RawMessage, error) {
	params := url.Values{}
	params.Set("realm_name", realmName)
	params.Set("zonegroup_name", zonegroupName)
	params.Set("zonegroup_endpoints", zonegroupEndpoints)
	params.Set("zone_name", zoneName)
	params.Set("zone_endpoints", zoneEndpoints)
	params.Set("username", username)
	if cluster != "" {
		params.Set("cluster_fsid", cluster)
	}
	return c.do(ctx, OperationSetUpReplication, http.MethodPost, fmt.Sprintf("%s/multisite-replications", uiAPIPath), params)
}
