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

package helpers

import (
	rookclient "github.com/rook/rook/pkg/client/clientset/versioned"
	fakerook "github.com/rook/rook/pkg/client/clientset/versioned/fake"
	fakecephv1 "github.com/rook/rook/pkg/client/clientset/versioned/typed/ceph.rook.io/v1/fake"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes"
	fakekube "k8s.io/client-go/kubernetes/fake"
	fakecorev1 "k8s.io/client-go/kubernetes/typed/core/v1/fake"
	gotesting "k8s.io/client-go/testing"
)

var supportedKinds = map[string]bool{
	// rook kinds
	"cephobjectrealms":     true,
	"cephobjectzonegroups": true,
	"cephobjectzones":      true,
	// k8s kinds
	"configmaps": true,
	"secrets":    true,
}

func GetFakeRookclient(objects ...runtime.Object) rookclient.Interface {
	rs := fakerook.NewSimpleClientset(objects...)
	rs.ReactionChain = make([]gotesting.Reactor, 0)
	return rs
}

func GetFakeKubeclient(objects ...runtime.Object) kubernetes.Interface {
	ks := fakekube.NewSimpleClientset(objects...)
	ks.ReactionChain = make([]gotesting.Reactor, 0)
	return ks
}

func CleanupFakeClientReactions(clientInterface interface{}) {
	cleanupFakeClientReactions(GetFakeClientForInterface(clientInterface))
}

func GetFakeClientForInterface(clientInterface interface{}) *gotesting.Fake {
	switch clientInterfaceCasted := clientInterface.(type) {
	// rook fake clients
	case *fakecephv1.FakeCephV1:
		return clientInterfaceCasted.Fake
	case rookclient.Interface:
		return clientInterfaceCasted.CephV1().(*fakecephv1.FakeCephV1).Fake
	// k8s fake clients
	case *fakecorev1.FakeCoreV1:
		return clientInterfaceCasted.Fake
	case kubernetes.Interface:
		return clientInterfaceCasted.CoreV1().(*fakecorev1.FakeCoreV1).Fake
	case *gotesting.Fake:
		// support any fake clients, passed directly to helper
		return clientInterfaceCasted
	}
	// if nothing match - return empty fake client
	return &gotesting.Fake{}
}

func FakeReaction(clientInterface interface{}, action string, resourcesToReact []string, inputResources map[string]runtime.Object, apiErrors map[string]error) {
	for _, reactResource := range resourcesToReact {
		addReaction(GetFakeClientForInterface(clientInterface), action, reactResource, inputResources, apiErrors)
	}
}
