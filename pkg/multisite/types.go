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

// SystemKey is a zone system user credentials used for replication
type SystemKey struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

type Realm struct {
	Name    string `json:"name"`
	Default bool   `json:"is_default,omitempty"`
}

type Zonegroup struct {
	Name string `json:"name"`
	// comma separated list of endpoints
	Endpoints string `json:"endpoints"`
	Realm     string `json:"realm,omitempty"`
}

type Zone struct {
	Name      string    `json:"name"`
	Endpoints string    `json:"endpoints"`
	Zonegroup string    `json:"zonegroup,omitempty"`
	SystemKey SystemKey `json:"system_key"`
}

// Topology is a realm, zonegroup and zone triple a zone belongs to
type Topology struct {
	Realm     Realm     `json:"realm"`
	Zonegroup Zonegroup `json:"zonegroup"`
	Zone      Zone      `json:"zone"`
}
