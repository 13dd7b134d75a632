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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

var SecretsListEmpty = &corev1.SecretList{Items: []corev1.Secret{}}

func GetRealmKeysSecret(realm, accessKey, secretKey string) corev1.Secret {
	return corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: RookNamespace,
			Name:      realm + "-keys",
		},
		Data: map[string][]byte{
			"access-key": []byte(accessKey),
			"secret-key": []byte(secretKey),
		},
	}
}

var RealmKeysSecret = GetRealmKeysSecret("realm1", "5TABLO7H0I6BTW6N25X5", "Wd8SDDrtyyAuiD1klOGn9vJqOJh5dOSVlJ6kir9Q")

var SecretsListRealmKeys = &corev1.SecretList{Items: []corev1.Secret{RealmKeysSecret}}
