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
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/Mirantis/pelagia-dashboard/pkg/backend"
)

// ReplicationRequest is a body for replication set up
type ReplicationRequest struct {
	RealmName          string `json:"realm_name"`
	ZonegroupName      string `json:"zonegroup_name"`
	ZonegroupEndpoints string `json:"zonegroup_endpoints"`
	ZoneName           string `json:"zone_name"`
	ZoneEndpoints      string `json:"zone_endpoints"`
	Username           string `json:"username"`
	ClusterFSID        string `json:"cluster_fsid,omitempty"`
}

// Handler exposes multisite operations on dashboard ui-api, backend
// responses and errors are passed to caller as is
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /ui-api/multisite/status", h.status)
	mux.HandleFunc("GET /ui-api/multisite/sync-status", h.syncStatus)
	mux.HandleFunc("PUT /ui-api/multisite/migrate", h.migrate)
	mux.HandleFunc("POST /ui-api/multisite/replications", h.setUpReplication)
}

func writeDetail(w http.ResponseWriter, code int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func (h *Handler) respond(w http.ResponseWriter, resp jsoniter.RawMessage, err error) {
	if err != nil {
		var reqErr *backend.RequestError
		if errors.As(err, &reqErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(reqErr.StatusCode)
			_, _ = w.Write(reqErr.Body)
			return
		}
		h.client.log.Error().Err(err).Msg("multisite request failed")
		writeDetail(w, http.StatusBadGateway, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	resp, err := h.client.Status(r.Context())
	h.respond(w, resp, err)
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := h.client.GetSyncStatus(r.Context())
	h.respond(w, resp, err)
}

func (h *Handler) migrate(w http.ResponseWriter, r *http.Request) {
	var topology Topology
	if err := json.NewDecoder(r.Body).Decode(&topology); err != nil {
		writeDetail(w, http.StatusBadRequest, "expected body with realm, zonegroup and zone")
		return
	}
	resp, err := h.client.Migrate(r.Context(), topology.Realm, topology.Zonegroup, topology.Zone)
	h.respond(w, resp, err)
}

func (h *Handler) setUpReplication(w http.ResponseWriter, r *http.Request) {
	var req ReplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "expected replication parameters body")
		return
	}
	resp, err := h.client.SetUpMultisiteReplication(r.Context(), req.RealmName, req.ZonegroupName, req.ZonegroupEndpoints,
		req.ZoneName, req.ZoneEndpoints, req.Username, req.ClusterFSID)
	h.respond(w, resp, err)
}
