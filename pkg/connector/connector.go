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

package connector

import (
	"github.com/pkg/errors"
	rookclient "github.com/rook/rook/pkg/client/clientset/versioned"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	ctrlconfig "sigs.k8s.io/controller-runtime/pkg/client/config"
)

// ClusterConnector keeps clients used to read dashboard configuration and
// rook multisite objects
type ClusterConnector struct {
	Config        *rest.Config
	Kubeclientset kubernetes.Interface
	Rookclientset rookclient.Interface
}

// GetConnector uses kubeconfig from flags or environment, in-cluster config otherwise
func GetConnector() (*ClusterConnector, error) {
	config, err := ctrlconfig.GetConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get client config")
	}
	return NewConnector(config)
}

func NewConnector(config *rest.Config) (*ClusterConnector, error) {
	rookClientset, err := rookclient.NewForConfig(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get rook client")
	}
	kubeClientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get kubernetes client")
	}
	return &ClusterConnector{Config: config, Kubeclientset: kubeClientset, Rookclientset: rookClientset}, nil
}
