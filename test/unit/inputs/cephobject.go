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
	cephv1 "github.com/rook/rook/pkg/apis/ceph.rook.io/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

//
// CEPHOBJECTREALM SECTION
//

var CephObjectRealmListEmpty = &cephv1.CephObjectRealmList{Items: []cephv1.CephObjectRealm{}}

var RgwMultisiteMasterRealm1 = cephv1.CephObjectRealm{
	ObjectMeta: metav1.ObjectMeta{
		Name:      "realm1",
		Namespace: RookNamespace,
	},
	Spec: cephv1.ObjectRealmSpec{
		DefaultRealm: true,
	},
}

var CephObjectRealmList = &cephv1.CephObjectRealmList{Items: []cephv1.CephObjectRealm{RgwMultisiteMasterRealm1}}

//
// CEPHOBJECTZONEGROUP SECTION
//

var CephObjectZoneGroupListEmpty = &cephv1.CephObjectZoneGroupList{Items: []cephv1.CephObjectZoneGroup{}}

var RgwMultisiteMasterZoneGroup1 = cephv1.CephObjectZoneGroup{
	ObjectMeta: metav1.ObjectMeta{
		Name:      "zonegroup1",
		Namespace: RookNamespace,
	},
	Spec: cephv1.ObjectZoneGroupSpec{
		Realm: "realm1",
	},
}

var CephObjectZoneGroupList = &cephv1.CephObjectZoneGroupList{Items: []cephv1.CephObjectZoneGroup{RgwMultisiteMasterZoneGroup1}}

//
// CEPHOBJECTZONE SECTION
//

var CephObjectZoneListEmpty = &cephv1.CephObjectZoneList{Items: []cephv1.CephObjectZone{}}

var RgwMultisiteMasterZone1 = cephv1.CephObjectZone{
	ObjectMeta: metav1.ObjectMeta{
		Name:      "zone1",
		Namespace: RookNamespace,
	},
	Spec: cephv1.ObjectZoneSpec{
		ZoneGroup:       "zonegroup1",
		CustomEndpoints: []string{"http://10.10.0.1:80", "http://10.10.0.2:80"},
	},
}

var RgwMultisiteZoneNoEndpoints = cephv1.CephObjectZone{
	ObjectMeta: metav1.ObjectMeta{
		Name:      "zone2",
		Namespace: RookNamespace,
	},
	Spec: cephv1.ObjectZoneSpec{
		ZoneGroup: "zonegroup1",
	},
}

var RgwMultisiteZoneOrphan = cephv1.CephObjectZone{
	ObjectMeta: metav1.ObjectMeta{
		Name:      "zone3",
		Namespace: RookNamespace,
	},
	Spec: cephv1.ObjectZoneSpec{
		ZoneGroup: "zonegroup-absent",
	},
}

var CephObjectZoneList = &cephv1.CephObjectZoneList{
	Items: []cephv1.CephObjectZone{RgwMultisiteMasterZone1, RgwMultisiteZoneNoEndpoints, RgwMultisiteZoneOrphan},
}
