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

package lcmcommon

// Summary is a snapshot returned by mgr 'api/summary' endpoint,
// only fields used by dashboard shell are described
type Summary struct {
	HealthStatus      string        `json:"health_status,omitempty"`
	MgrID             string        `json:"mgr_id,omitempty"`
	MgrHost           string        `json:"mgr_host,omitempty"`
	HaveMonConnection bool          `json:"have_mon_connection,omitempty"`
	Version           string        `json:"version,omitempty"`
	RbdMirroring      *RbdMirroring `json:"rbd_mirroring,omitempty"`
}

type RbdMirroring struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Motd is a message of the day set by 'ceph dashboard motd set'
type Motd struct {
	Message  string `json:"message"`
	Md5      string `json:"md5"`
	Severity string `json:"severity"`
	Expires  int64  `json:"expires"`
}

type RgwDaemon struct {
	ID            string `json:"id"`
	ServiceMapID  string `json:"service_map_id"`
	Version       string `json:"version"`
	ServerHost    string `json:"server_hostname"`
	RealmName     string `json:"realm_name"`
	ZonegroupName string `json:"zonegroup_name"`
	ZoneName      string `json:"zone_name"`
	Default       bool   `json:"default"`
	Port          int    `json:"port"`
}
