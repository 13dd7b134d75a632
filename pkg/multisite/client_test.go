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
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/Mirantis/pelagia-dashboard/pkg/backend"
	"github.com/Mirantis/pelagia-dashboard/pkg/metrics"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Accept string
}

type fakeCephAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	daemons  string
	// path -> status code and body
	responses map[string]apiResponse
}

type apiResponse struct {
	code int
	body string
}

func (f *fakeCephAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Accept: r.Header.Get("Accept")})
	if r.URL.Path == "/"+rgwDaemonPath {
		_, _ = w.Write([]byte(f.daemons))
		return
	}
	resp, ok := f.responses[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result": "ok"}`))
		return
	}
	w.WriteHeader(resp.code)
	_, _ = w.Write([]byte(resp.body))
}

func (f *fakeCephAPI) allRequests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest{}, f.requests...)
}

func (f *fakeCephAPI) apiRequests() []recordedRequest {
	requests := []recordedRequest{}
	for _, req := range f.allRequests() {
		if req.Path != "/"+rgwDaemonPath {
			requests = append(requests, req)
		}
	}
	return requests
}

const daemonsList = `[
	{"id": "rgw.a", "server_hostname": "node-a", "zone_name": "zone1", "default": false},
	{"id": "rgw.b", "server_hostname": "node-b", "zone_name": "zone1", "default": true}
]`

func newTestClient(t *testing.T, api *fakeCephAPI, reg prometheus.Registerer) *Client {
	t.Helper()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)
	backendClient := backend.NewClientWithHTTP(server.URL, "token", server.Client())
	return NewClient(zerolog.Nop(), backendClient, nil, metrics.NewDashboardMetrics(reg))
}

func TestSetUpMultisiteReplication(t *testing.T) {
	tests := []struct {
		name          string
		cluster       string
		expectedQuery url.Values
	}{
		{
			name: "no cluster specified",
			expectedQuery: url.Values{
				"realm_name":          []string{"r1"},
				"zonegroup_name":      []string{"zg1"},
				"zonegroup_endpoints": []string{"http://a"},
				"zone_name":           []string{"z1"},
				"zone_endpoints":      []string{"http://b"},
				"username":            []string{"user"},
			},
		},
		{
			name:    "cluster specified",
			cluster: "fsid123",
			expectedQuery: url.Values{
				"realm_name":          []string{"r1"},
				"zonegroup_name":      []string{"zg1"},
				"zonegroup_endpoints": []string{"http://a"},
				"zone_name":           []string{"z1"},
				"zone_endpoints":      []string{"http://b"},
				"username":            []string{"user"},
				"cluster_fsid":        []string{"fsid123"},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			api := &fakeCephAPI{daemons: daemonsList}
			client := newTestClient(t, api, nil)
			resp, err := client.SetUpMultisiteReplication(context.TODO(), "r1", "zg1", "http://a", "z1", "http://b", "user", test.cluster)
			assert.Nil(t, err)
			assert.JSONEq(t, `{"result": "ok"}`, string(resp))
			requests := api.apiRequests()
			if assert.Len(t, requests, 1) {
				assert.Equal(t, http.MethodPost, requests[0].Method)
				assert.Equal(t, "/ui-api/rgw/multisite/multisite-replications", requests[0].Path)
				assert.Equal(t, test.expectedQuery, requests[0].Query)
				assert.Equal(t, "application/json", requests[0].Accept)
			}
			_, present := api.apiRequests()[0].Query["cluster_fsid"]
			assert.Equal(t, test.cluster != "", present)
		})
	}
}

func TestMigrate(t *testing.T) {
	api := &fakeCephAPI{daemons: daemonsList}
	client := newTestClient(t, api, nil)
	realm := Realm{Name: "realm1"}
	zonegroup := Zonegroup{Name: "zonegroup1", Endpoints: "http://10.10.0.1:80"}
	zone := Zone{Name: "zone1", Endpoints: "http://10.10.0.1:80,http://10.10.0.2:80", SystemKey: SystemKey{AccessKey: "ak", SecretKey: "sk"}}

	_, err := client.Migrate(context.TODO(), realm, zonegroup, zone)
	assert.Nil(t, err)
	_, err = client.Migrate(context.TODO(), realm, zonegroup, zone)
	assert.Nil(t, err)

	// daemons are listed only once, default daemon is selected
	daemonCalls := 0
	for _, req := range api.allRequests() {
		if req.Path == "/"+rgwDaemonPath {
			daemonCalls++
			assert.Equal(t, "application/vnd.ceph.api.v1.0+json", req.Accept)
		}
	}
	assert.Equal(t, 1, daemonCalls)
	requests := api.apiRequests()
	assert.Len(t, requests, 2)
	for _, req := range requests {
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "/ui-api/rgw/multisite/migrate", req.Path)
		assert.Equal(t, url.Values{
			"daemon_name":         []string{"rgw.b"},
			"realm_name":          []string{"realm1"},
			"zonegroup_name":      []string{"zonegroup1"},
			"zone_name":           []string{"zone1"},
			"zonegroup_endpoints": []string{"http://10.10.0.1:80"},
			"zone_endpoints":      []string{"http://10.10.0.1:80,http://10.10.0.2:80"},
			"access_key":          []string{"ak"},
			"secret_key":          []string{"sk"},
		}, req.Query)
	}
}

func TestMigrateNoDaemons(t *testing.T) {
	api := &fakeCephAPI{daemons: `[]`}
	client := newTestClient(t, api, nil)
	_, err := client.Migrate(context.TODO(), Realm{}, Zonegroup{}, Zone{})
	assert.NotNil(t, err)
	assert.Equal(t, "failed to select rgw daemon: no rgw daemons found", err.Error())
	assert.Len(t, api.apiRequests(), 0)
}

func TestStatusRequests(t *testing.T) {
	tests := []struct {
		name           string
		call           func(c *Client) (jsoniter.RawMessage, error)
		path           string
		accept         string
		response       string
		code           int
		expectedError  string
		expectedStatus int
	}{
		{
			name:     "sync status",
			call:     func(c *Client) (jsoniter.RawMessage, error) { return c.GetSyncStatus(context.TODO()) },
			path:     "/api/rgw/multisite/sync_status",
			accept:   "application/vnd.ceph.api.v1.0+json",
			response: `{"metadata_sync": {"syncstatus": "no sync"}}`,
			code:     http.StatusOK,
		},
		{
			name:     "status",
			call:     func(c *Client) (jsoniter.RawMessage, error) { return c.Status(context.TODO()) },
			path:     "/ui-api/rgw/multisite/status",
			accept:   "application/json",
			response: `{"is_multisite_configured": true}`,
			code:     http.StatusOK,
		},
		{
			name:           "status failed",
			call:           func(c *Client) (jsoniter.RawMessage, error) { return c.Status(context.TODO()) },
			path:           "/ui-api/rgw/multisite/status",
			accept:         "application/json",
			response:       `{"detail": "internal error"}`,
			code:           http.StatusInternalServerError,
			expectedError:  "GET ui-api/rgw/multisite/status failed with status 500: {\"detail\": \"internal error\"}",
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			api := &fakeCephAPI{responses: map[string]apiResponse{test.path: {code: test.code, body: test.response}}}
			reg := prometheus.NewRegistry()
			client := newTestClient(t, api, reg)
			resp, err := test.call(client)
			if test.expectedError != "" {
				assert.NotNil(t, err)
				if err != nil {
					assert.Equal(t, test.expectedError, err.Error())
				}
				assert.Equal(t, test.expectedStatus, backend.StatusCode(err))
				assert.Nil(t, resp)
			} else {
				assert.Nil(t, err)
				// response is passed through unmodified
				assert.Equal(t, test.response, string(resp))
			}
			requests := api.apiRequests()
			if assert.Len(t, requests, 1) {
				assert.Equal(t, http.MethodGet, requests[0].Method)
				assert.Equal(t, test.path, requests[0].Path)
				assert.Equal(t, test.accept, requests[0].Accept)
				assert.Empty(t, requests[0].Query)
			}
			count, err := testutil.GatherAndCount(reg, "pelagia_dashboard_multisite_requests_total")
			assert.Nil(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

func TestDaemonSelection(t *testing.T) {
	tests := []struct {
		name          string
		daemons       string
		expectedID    string
		expectedError string
	}{
		{
			name:       "default daemon is picked",
			daemons:    daemonsList,
			expectedID: "rgw.b",
		},
		{
			name:       "first daemon is picked without default",
			daemons:    `[{"id": "rgw.c"}, {"id": "rgw.d"}]`,
			expectedID: "rgw.c",
		},
		{
			name:          "no daemons",
			daemons:       `[]`,
			expectedError: "no rgw daemons found",
		},
		{
			name:          "malformed list",
			daemons:       `{"id": "rgw.c"}`,
			expectedError: "failed to decode rgw daemons list",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := newTestClient(t, &fakeCephAPI{daemons: test.daemons}, nil)
			daemon, err := client.Daemons().Selected(context.TODO())
			if test.expectedError != "" {
				assert.NotNil(t, err)
				if err != nil {
					assert.Contains(t, err.Error(), test.expectedError)
				}
			} else {
				assert.Nil(t, err)
				assert.Equal(t, test.expectedID, daemon.ID)
			}
		})
	}
}

func TestDaemonSelect(t *testing.T) {
	api := &fakeCephAPI{daemons: daemonsList}
	client := newTestClient(t, api, nil)
	daemon, err := client.Daemons().Select(context.TODO(), "rgw.a")
	assert.Nil(t, err)
	assert.Equal(t, "node-a", daemon.ServerHost)

	_, err = client.Daemons().Select(context.TODO(), "rgw.x")
	assert.NotNil(t, err)
	assert.Equal(t, "rgw daemon 'rgw.x' is not found", err.Error())

	resp, err := client.Daemons().Request(context.TODO(), func(params url.Values) (jsoniter.RawMessage, error) {
		return jsoniter.RawMessage(params.Encode()), nil
	})
	assert.Nil(t, err)
	assert.Equal(t, "daemon_name=rgw.a", string(resp))
}
