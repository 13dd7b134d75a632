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

package shell

import (
	"bytes"
	_ "embed"
	"net/http"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed assets/index.html
var embeddedIndex []byte

// LoadIndex reads index page from path, embedded page is used for empty path
func LoadIndex(path string) ([]byte, error) {
	if path == "" {
		return embeddedIndex, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index page '%s'", path)
	}
	return content, nil
}

type Handler struct {
	page    []byte
	widgets WidgetDefaults
}

// NewHandler bootstraps shell over index page and keeps rendered result
func NewHandler(s *Shell, index []byte) (*Handler, error) {
	doc, err := ParseHTMLDocument(bytes.NewReader(index))
	if err != nil {
		return nil, err
	}
	if err := s.Bootstrap(doc); err != nil {
		return nil, errors.Wrap(err, "failed to bootstrap shell")
	}
	page, err := doc.Bytes()
	if err != nil {
		return nil, err
	}
	return &Handler{page: page, widgets: s.Widgets()}, nil
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.getIndex)
	mux.HandleFunc("GET /index.html", h.getIndex)
	mux.HandleFunc("GET /ui-api/shell/widgets", h.getWidgets)
}

func (h *Handler) getIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.page)
}

func (h *Handler) getWidgets(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.widgets)
}
