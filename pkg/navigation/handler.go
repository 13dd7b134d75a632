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
	"net/http"
)

type Handler struct {
	nav        *Navigation
	publishers map[string]*Publisher
}

type visibilityRequest struct {
	Visible *bool `json:"visible"`
}

// NewHandler exposes navigation state, push based sources of navigation
// can be updated through handler
func NewHandler(nav *Navigation) *Handler {
	publishers := map[string]*Publisher{}
	for _, reg := range nav.Registrations() {
		if publisher, ok := reg.Source.(*Publisher); ok {
			publishers[reg.Name] = publisher
		}
	}
	return &Handler{nav: nav, publishers: publishers}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /ui-api/navigation/state", h.getState)
	mux.HandleFunc("PUT /ui-api/navigation/notifications/{name}", h.putNotification)
	mux.HandleFunc("POST /ui-api/navigation/submenu/{id}", h.toggleSubMenu)
	mux.HandleFunc("POST /ui-api/navigation/sidebar", h.toggleSidebar)
}

func writeJSON(w http.ResponseWriter, code int, obj interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(obj)
}

func (h *Handler) getState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.nav.State())
}

func (h *Handler) putNotification(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	publisher, ok := h.publishers[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "notification '" + name + "' can't be published"})
		return
	}
	var req visibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Visible == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "expected body {\"visible\": <bool>}"})
		return
	}
	publisher.Publish(*req.Visible)
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) toggleSubMenu(w http.ResponseWriter, r *http.Request) {
	h.nav.ToggleSubMenu(r.PathValue("id"))
	writeJSON(w, http.StatusOK, h.nav.State())
}

func (h *Handler) toggleSidebar(w http.ResponseWriter, _ *http.Request) {
	h.nav.ToggleRightSidebar()
	writeJSON(w, http.StatusOK, h.nav.State())
}
