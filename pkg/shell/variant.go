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

package shell

import (
	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
)

const FaviconElementID = "cdFavicon"

// Branding describes cosmetic changes applied to the shell document
type Branding struct {
	// document title
	Title string
	// href for favicon element
	Favicon string
	// extra stylesheet to append into head, optional
	Stylesheet string
}

var brandings = map[lcmcommon.BuildVariant]Branding{
	lcmcommon.BuildVariantIBM: {
		Title:      "IBM Storage Ceph",
		Favicon:    "assets/StorageCeph_favicon.svg",
		Stylesheet: "ibm-overrides.css",
	},
	lcmcommon.BuildVariantRedHat: {
		Title:   "Red Hat Ceph Storage",
		Favicon: "assets/RedHat_favicon_0319.svg",
	},
}

// BrandingFor returns branding for variant, false means document must stay untouched
func BrandingFor(variant lcmcommon.BuildVariant) (Branding, bool) {
	branding, ok := brandings[variant]
	return branding, ok
}
