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

package backend

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
)

// Client issues requests to ceph mgr dashboard REST API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// RequestError is returned for any non 2xx response, body is kept unmodified
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Path, e.StatusCode, strings.TrimSpace(string(e.Body)))
}

func NewClient(baseURL, token string, insecure bool) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402
	}
	return NewClientWithHTTP(baseURL, token, &http.Client{Transport: transport})
}

func NewClientWithHTTP(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

func acceptHeader(path string) string {
	// only public api is versioned, ui-api is plain json
	if strings.HasPrefix(path, "api/") {
		return lcmcommon.CephAPIMediaType
	}
	return "application/json"
}

// Do sends request without body and returns response body as is
func (c *Client) Do(ctx context.Context, method, path string, params url.Values) (jsoniter.RawMessage, error) {
	path = strings.TrimPrefix(path, "/")
	requestURL := fmt.Sprintf("%s/%s", c.baseURL, path)
	if len(params) > 0 {
		requestURL = fmt.Sprintf("%s?%s", requestURL, params.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to prepare %s request for '%s'", method, path)
	}
	req.Header.Set("Accept", acceptHeader(path))
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s '%s'", method, path)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: body}
	}
	return jsoniter.RawMessage(body), nil
}

// StatusCode returns response code from error returned by Do, zero if there was no response
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}
