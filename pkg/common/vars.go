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

type BuildVariant string

const (
	BuildVariantDefault BuildVariant = ""
	BuildVariantIBM     BuildVariant = "ibm"
	BuildVariantRedHat  BuildVariant = "redhat"
)

const (
	// app name used in logs and metrics
	DashboardAppName = "pelagia-dashboard"
	// ceph mgr REST API versioned media type
	CephAPIMediaType = "application/vnd.ceph.api.v1.0+json"
	// backend endpoints polled for navigation data
	SummaryAPIPath = "api/summary"
	MotdAPIPath    = "ui-api/motd"
	// health colors for rbd mirroring block
	RbdMirroringErrorsColor   = "#f4926c"
	RbdMirroringWarningsColor = "#f0ad4e"
	// multisite realm secret keys, secret name is '<realm>-keys'
	RealmSecretNameTemplate = "%s-keys"
	RealmSecretAccessKey    = "access-key"
	RealmSecretSecretKey    = "secret-key"
)
