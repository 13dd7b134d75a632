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

package dashconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/Mirantis/pelagia-dashboard/codeversion"
	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
	faketestclients "github.com/Mirantis/pelagia-dashboard/test/unit/clients"
	unitinputs "github.com/Mirantis/pelagia-dashboard/test/unit/inputs"
)

func expectedConfig(modify func(*DashboardConfig)) DashboardConfig {
	backend := defaultBackendParams
	navigation := defaultNavigationParams
	config := defaultDashboardConfig
	config.Backend = &backend
	config.NavigationParams = &navigation
	if modify != nil {
		modify(&config)
	}
	return config
}

func TestReadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configData map[string]string
		build      string
		expected   DashboardConfig
	}{
		{
			name:     "no params - default config",
			expected: expectedConfig(nil),
		},
		{
			name:  "no params - build variant from binary",
			build: "redhat",
			expected: expectedConfig(func(c *DashboardConfig) {
				c.BuildVariant = lcmcommon.BuildVariantRedHat
			}),
		},
		{
			name:  "all params are valid",
			build: "redhat",
			configData: map[string]string{
				"DASHBOARD_BUILD_VARIANT":             "ibm",
				"DASHBOARD_LOG_LEVEL":                 "DEBUG",
				"DASHBOARD_LISTEN_ADDRESS":            "127.0.0.1:9090",
				"DASHBOARD_INDEX_PATH":                "/srv/dashboard/index.html",
				"DASHBOARD_ROOK_NAMESPACE":            "custom-rook-ceph",
				"DASHBOARD_BACKEND_URL":               "https://mgr.ceph:8443/",
				"DASHBOARD_BACKEND_TOKEN":             "some-token",
				"DASHBOARD_BACKEND_INSECURE":          "true",
				"DASHBOARD_SUMMARY_POLL_INTERVAL_SEC": "10",
				"DASHBOARD_MOTD_POLL_INTERVAL_SEC":    "120",
			},
			expected: DashboardConfig{
				BuildVariant:  lcmcommon.BuildVariantIBM,
				LogLevel:      zerolog.DebugLevel,
				ListenAddress: "127.0.0.1:9090",
				IndexPath:     "/srv/dashboard/index.html",
				RookNamespace: "custom-rook-ceph",
				Backend: &BackendParams{
					URL:      "https://mgr.ceph:8443",
					Token:    "some-token",
					Insecure: true,
				},
				NavigationParams: &NavigationParams{
					SummaryPollInterval: 10 * time.Second,
					MotdPollInterval:    2 * time.Minute,
				},
			},
		},
		{
			name: "invalid params are ignored",
			configData: map[string]string{
				"DASHBOARD_LOG_LEVEL":                 "loud",
				"DASHBOARD_BACKEND_URL":               "mgr.ceph",
				"DASHBOARD_BACKEND_INSECURE":          "maybe",
				"DASHBOARD_SUMMARY_POLL_INTERVAL_SEC": "-1",
				"DASHBOARD_MOTD_POLL_INTERVAL_SEC":    "often",
			},
			expected: expectedConfig(nil),
		},
		{
			name: "unknown build variant is kept as is",
			configData: map[string]string{
				"DASHBOARD_BUILD_VARIANT": "upstream",
			},
			expected: expectedConfig(func(c *DashboardConfig) {
				c.BuildVariant = lcmcommon.BuildVariant("upstream")
			}),
		},
	}
	oldBuild := codeversion.Build
	defer func() { codeversion.Build = oldBuild }()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			codeversion.Build = test.build
			actual := ReadConfiguration(zerolog.Nop(), test.configData)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		noFile        bool
		expected      DashboardConfig
		expectedError string
	}{
		{
			name: "scalar values of any type",
			content: `DASHBOARD_BUILD_VARIANT: redhat
DASHBOARD_BACKEND_INSECURE: true
DASHBOARD_SUMMARY_POLL_INTERVAL_SEC: 15
DASHBOARD_BACKEND_TOKEN:
`,
			expected: expectedConfig(func(c *DashboardConfig) {
				c.BuildVariant = lcmcommon.BuildVariantRedHat
				c.Backend.Insecure = true
				c.NavigationParams.SummaryPollInterval = 15 * time.Second
			}),
		},
		{
			name:          "nested values are not allowed",
			content:       "DASHBOARD_BACKEND_URL:\n  host: mgr\n",
			expectedError: "parameter 'DASHBOARD_BACKEND_URL' must be a scalar value",
		},
		{
			name:          "file is absent",
			noFile:        true,
			expectedError: "failed to read config file",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dashboard.yaml")
			if !test.noFile {
				assert.Nil(t, os.WriteFile(path, []byte(test.content), 0600))
			}
			actual, err := LoadFromFile(zerolog.Nop(), path)
			if test.expectedError != "" {
				assert.NotNil(t, err)
				assert.Contains(t, err.Error(), test.expectedError)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, test.expected, actual)
			}
		})
	}
}

func TestLoadFromConfigMap(t *testing.T) {
	tests := []struct {
		name          string
		configMaps    *corev1.ConfigMapList
		apiErrors     map[string]error
		expected      DashboardConfig
		expectedError string
	}{
		{
			name: "configmap is present",
			configMaps: &corev1.ConfigMapList{
				Items: []corev1.ConfigMap{*unitinputs.DashboardConfigMap(map[string]string{"DASHBOARD_BUILD_VARIANT": "ibm"})},
			},
			expected: expectedConfig(func(c *DashboardConfig) {
				c.BuildVariant = lcmcommon.BuildVariantIBM
			}),
		},
		{
			name:       "configmap is not found",
			configMaps: unitinputs.ConfigMapListEmpty,
			expected:   expectedConfig(nil),
		},
		{
			name:          "failed to get configmap",
			configMaps:    unitinputs.ConfigMapListEmpty,
			apiErrors:     map[string]error{"get-configmaps": errors.New("get failed")},
			expectedError: "failed to get configmap 'pelagia-dashboard/pelagia-dashboard-config': get failed",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			kubeClient := faketestclients.GetFakeKubeclient()
			inputResources := map[string]runtime.Object{"configmaps": test.configMaps}
			faketestclients.FakeReaction(kubeClient, "get", []string{"configmaps"}, inputResources, test.apiErrors)
			actual, err := LoadFromConfigMap(context.TODO(), zerolog.Nop(), kubeClient, unitinputs.DashboardNamespace, "")
			if test.expectedError != "" {
				assert.NotNil(t, err)
				assert.Equal(t, test.expectedError, err.Error())
			} else {
				assert.Nil(t, err)
				assert.Equal(t, test.expected, actual)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	environ := []string{
		"HOME=/root",
		"DASHBOARD_BUILD_VARIANT=redhat",
		"DASHBOARD_BACKEND_URL=http://mgr:8080/",
		"DASHBOARD_MOTD_POLL_INTERVAL_SEC=30",
		"DASHBOARD_BROKEN",
		"PATH=/usr/bin",
	}
	expected := expectedConfig(func(c *DashboardConfig) {
		c.BuildVariant = lcmcommon.BuildVariantRedHat
		c.Backend.URL = "http://mgr:8080"
		c.NavigationParams.MotdPollInterval = 30 * time.Second
	})
	assert.Equal(t, expected, LoadFromEnv(zerolog.Nop(), environ))
}
