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
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mirantis/pelagia-dashboard/codeversion"
	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
)

type DashboardConfig struct {
	// build flavor, selects branding and optional notifications
	BuildVariant lcmcommon.BuildVariant
	// log level for all dashboard components
	LogLevel zerolog.Level
	// address to serve shell and ui-api on
	ListenAddress string
	// path to index.html to brand, embedded one is used if empty
	IndexPath string
	// rook namespace to look for multisite objects
	RookNamespace string
	// ceph mgr dashboard backend connection
	Backend *BackendParams
	// params related to navigation notifications
	NavigationParams *NavigationParams
}

type BackendParams struct {
	// base url of ceph mgr dashboard module
	URL string
	// bearer token for ceph mgr REST API
	Token string
	// skip tls verification for backend
	Insecure bool
}

type NavigationParams struct {
	// interval for polling cluster summary
	SummaryPollInterval time.Duration
	// interval for polling message of the day
	MotdPollInterval time.Duration
}

var (
	defaultDashboardConfig = DashboardConfig{
		LogLevel:      zerolog.InfoLevel,
		ListenAddress: ":8080",
		RookNamespace: "rook-ceph",
	}
	defaultBackendParams = BackendParams{
		URL: "https://127.0.0.1:8443",
	}
	defaultNavigationParams = NavigationParams{
		SummaryPollInterval: 5 * time.Second,
		MotdPollInterval:    60 * time.Second,
	}
)

var (
	errorMsgTmpl = "has incorrect parameter value '%s=%s', expected %s"
	debugMsgTmpl = "set '%s=%s'"
	// general dashboard params
	buildVariantParameter  = "DASHBOARD_BUILD_VARIANT"
	logLevelParameter      = "DASHBOARD_LOG_LEVEL"
	listenAddressParameter = "DASHBOARD_LISTEN_ADDRESS"
	indexPathParameter     = "DASHBOARD_INDEX_PATH"
	rookNamespaceParameter = "DASHBOARD_ROOK_NAMESPACE"
	// backend params
	backendURLParameter      = "DASHBOARD_BACKEND_URL"
	backendTokenParameter    = "DASHBOARD_BACKEND_TOKEN"
	backendInsecureParameter = "DASHBOARD_BACKEND_INSECURE"
	// navigation params
	summaryPollIntervalParameter = "DASHBOARD_SUMMARY_POLL_INTERVAL_SEC"
	motdPollIntervalParameter    = "DASHBOARD_MOTD_POLL_INTERVAL_SEC"
)

func loadBackendConfiguration(objLog zerolog.Logger, configData map[string]string) *BackendParams {
	newBackendConfig := defaultBackendParams

	if backendURL, present := configData[backendURLParameter]; present {
		parsed, err := url.Parse(backendURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			objLog.Error().Msgf(errorMsgTmpl, backendURLParameter, backendURL, "valid absolute url")
		} else {
			objLog.Debug().Msgf(debugMsgTmpl, backendURLParameter, backendURL)
			newBackendConfig.URL = strings.TrimSuffix(backendURL, "/")
		}
	}

	if token, present := configData[backendTokenParameter]; present {
		// do not show token itself
		objLog.Debug().Msgf(debugMsgTmpl, backendTokenParameter, "<hidden>")
		newBackendConfig.Token = token
	}

	if value, present := configData[backendInsecureParameter]; present {
		parsed, err := strconv.ParseBool(strings.TrimSuffix(value, "\n"))
		if err != nil {
			objLog.Error().Msgf(errorMsgTmpl, backendInsecureParameter, value, "boolean")
		} else {
			objLog.Debug().Msgf(debugMsgTmpl, backendInsecureParameter, value)
			newBackendConfig.Insecure = parsed
		}
	}
	return &newBackendConfig
}

func parseInterval(objLog zerolog.Logger, configData map[string]string, parameter string, current time.Duration) time.Duration {
	value, present := configData[parameter]
	if !present {
		return current
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs <= 0 {
		objLog.Error().Msgf(errorMsgTmpl, parameter, value, "positive integer")
		return current
	}
	objLog.Debug().Msgf(debugMsgTmpl, parameter, value)
	return time.Duration(secs) * time.Second
}

func loadNavigationConfiguration(objLog zerolog.Logger, configData map[string]string) *NavigationParams {
	newNavigationConfig := defaultNavigationParams
	newNavigationConfig.SummaryPollInterval = parseInterval(objLog, configData, summaryPollIntervalParameter, newNavigationConfig.SummaryPollInterval)
	newNavigationConfig.MotdPollInterval = parseInterval(objLog, configData, motdPollIntervalParameter, newNavigationConfig.MotdPollInterval)
	return &newNavigationConfig
}

var knownParameters = []string{
	buildVariantParameter, logLevelParameter, listenAddressParameter, indexPathParameter, rookNamespaceParameter,
	backendURLParameter, backendTokenParameter, backendInsecureParameter,
	summaryPollIntervalParameter, motdPollIntervalParameter,
}

func ReadConfiguration(objLog zerolog.Logger, configData map[string]string) DashboardConfig {
	for _, key := range lcmcommon.SortedMapKeys(configData) {
		if !lcmcommon.Contains(knownParameters, key) {
			objLog.Warn().Msgf("unknown parameter '%s' is ignored", key)
		}
	}
	newConfig := defaultDashboardConfig
	newConfig.BuildVariant = lcmcommon.BuildVariant(codeversion.Build)

	if variant, present := configData[buildVariantParameter]; present {
		objLog.Debug().Msgf(debugMsgTmpl, buildVariantParameter, variant)
		newConfig.BuildVariant = lcmcommon.BuildVariant(variant)
	}

	if logLevel, present := configData[logLevelParameter]; present {
		l, err := zerolog.ParseLevel(strings.ToLower(logLevel))
		if err != nil {
			objLog.Error().Msgf(errorMsgTmpl, logLevelParameter, logLevel, "valid log levels: info, debug, trace, warn, error")
		} else {
			objLog.Debug().Msgf(debugMsgTmpl, logLevelParameter, logLevel)
			newConfig.LogLevel = l
		}
	}

	if address, present := configData[listenAddressParameter]; present {
		objLog.Debug().Msgf(debugMsgTmpl, listenAddressParameter, address)
		newConfig.ListenAddress = address
	}

	if indexPath, present := configData[indexPathParameter]; present {
		objLog.Debug().Msgf(debugMsgTmpl, indexPathParameter, indexPath)
		newConfig.IndexPath = indexPath
	}

	if rookNamespace, present := configData[rookNamespaceParameter]; present {
		objLog.Debug().Msgf(debugMsgTmpl, rookNamespaceParameter, rookNamespace)
		newConfig.RookNamespace = rookNamespace
	}

	newConfig.Backend = loadBackendConfiguration(objLog, configData)
	newConfig.NavigationParams = loadNavigationConfiguration(objLog, configData)
	return newConfig
}

func GetDefaultConfiguration() DashboardConfig {
	return ReadConfiguration(zerolog.Nop(), nil)
}
