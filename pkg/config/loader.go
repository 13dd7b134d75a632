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
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

const (
	DashboardConfigMapName = "pelagia-dashboard-config"
	envParameterPrefix     = "DASHBOARD_"
)

// LoadFromFile reads flat key-value yaml file with the same parameters
// as dashboard configmap has
func LoadFromFile(objLog zerolog.Logger, path string) (DashboardConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return DashboardConfig{}, errors.Wrapf(err, "failed to read config file '%s'", path)
	}
	configData, err := parseConfigData(content)
	if err != nil {
		return DashboardConfig{}, errors.Wrapf(err, "failed to parse config file '%s'", path)
	}
	objLog.Info().Msgf("loading configuration from file '%s'", path)
	return ReadConfiguration(objLog, configData), nil
}

func parseConfigData(content []byte) (map[string]string, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, err
	}
	configData := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			configData[key] = ""
		case string:
			configData[key] = v
		case map[interface{}]interface{}, []interface{}:
			return nil, errors.Errorf("parameter '%s' must be a scalar value", key)
		default:
			configData[key] = fmt.Sprintf("%v", v)
		}
	}
	return configData, nil
}

// LoadFromConfigMap reads dashboard configmap, missing configmap means default configuration
func LoadFromConfigMap(ctx context.Context, objLog zerolog.Logger, kubeClient kubernetes.Interface, namespace, name string) (DashboardConfig, error) {
	if name == "" {
		name = DashboardConfigMapName
	}
	cm, err := kubeClient.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			objLog.Warn().Msgf("configmap '%s/%s' is not found, using default configuration", namespace, name)
			return ReadConfiguration(objLog, nil), nil
		}
		return DashboardConfig{}, errors.Wrapf(err, "failed to get configmap '%s/%s'", namespace, name)
	}
	objLog.Info().Msgf("loading configuration from configmap '%s/%s'", namespace, name)
	return ReadConfiguration(objLog, cm.Data), nil
}

// LoadFromEnv reads dashboard parameters from environment entries in
// 'KEY=value' form, entries without dashboard prefix are skipped
func LoadFromEnv(objLog zerolog.Logger, environ []string) DashboardConfig {
	configData := map[string]string{}
	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if found && strings.HasPrefix(key, envParameterPrefix) {
			configData[key] = value
		}
	}
	return ReadConfiguration(objLog, configData)
}
