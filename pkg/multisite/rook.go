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
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	rookclient "github.com/rook/rook/pkg/client/clientset/versioned"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
)

// TopologyFromRook builds realm, zonegroup and zone for specified zone from
// rook multisite resources. System key is taken from realm keys secret.
func TopologyFromRook(ctx context.Context, rookClient rookclient.Interface, kubeClient kubernetes.Interface, namespace, zoneName string) (*Topology, error) {
	zone, err := rookClient.CephV1().CephObjectZones(namespace).Get(ctx, zoneName, metav1.GetOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get CephObjectZone '%s/%s'", namespace, zoneName)
	}
	zoneGroup, err := rookClient.CephV1().CephObjectZoneGroups(namespace).Get(ctx, zone.Spec.ZoneGroup, metav1.GetOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get CephObjectZoneGroup '%s/%s' for CephObjectZone '%s'", namespace, zone.Spec.ZoneGroup, zoneName)
	}
	realm, err := rookClient.CephV1().CephObjectRealms(namespace).Get(ctx, zoneGroup.Spec.Realm, metav1.GetOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get CephObjectRealm '%s/%s' for CephObjectZoneGroup '%s'", namespace, zoneGroup.Spec.Realm, zoneGroup.Name)
	}
	endpoints := strings.Join(zone.Spec.CustomEndpoints, ",")
	if endpoints == "" {
		return nil, errors.Errorf("CephObjectZone '%s/%s' has no custom endpoints specified", namespace, zoneName)
	}

	secretName := fmt.Sprintf(lcmcommon.RealmSecretNameTemplate, realm.Name)
	secret, err := kubeClient.CoreV1().Secrets(namespace).Get(ctx, secretName, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, errors.Errorf("secret '%s/%s' with system keys is not found for CephObjectRealm '%s'", namespace, secretName, realm.Name)
		}
		return nil, errors.Wrapf(err, "failed to get secret '%s/%s'", namespace, secretName)
	}
	accessKey, secretKey := string(secret.Data[lcmcommon.RealmSecretAccessKey]), string(secret.Data[lcmcommon.RealmSecretSecretKey])
	if accessKey == "" || secretKey == "" {
		return nil, errors.Errorf("secret '%s/%s' has no '%s' or '%s' keys", namespace, secretName, lcmcommon.RealmSecretAccessKey, lcmcommon.RealmSecretSecretKey)
	}

	return &Topology{
		Realm: Realm{
			Name:    realm.Name,
			Default: realm.Spec.DefaultRealm,
		},
		Zonegroup: Zonegroup{
			Name: zoneGroup.Name,
			// master zone endpoints are zonegroup endpoints
			Endpoints: endpoints,
			Realm:     realm.Name,
		},
		Zone: Zone{
			Name:      zone.Name,
			Endpoints: endpoints,
			Zonegroup: zoneGroup.Name,
			SystemKey: SystemKey{AccessKey: accessKey, SecretKey: secretKey},
		},
	}, nil
}
