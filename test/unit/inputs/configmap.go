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

package input

import (
	corev1 "k8s.io/api/core/v1"
)

var ConfigMapListEmpty = &corev1.ConfigMapList{Items: []corev1.ConfigMap{}}

func DashboardConfigMap(parameters map[string]string) *corev1.ConfigMap {
	configMapParams := map[string]string{}
	for k, v := range parameters {
		configMapParams[k] = v
	}
	return &corev1.ConfigMap{
		ObjectMeta: DashboardObjectMeta,
		Data:       configMapParams,
	}
}
