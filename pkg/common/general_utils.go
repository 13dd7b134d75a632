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

import (
	"fmt"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func Contains(list []string, s string) bool {
	return IndexOf(list, s) >= 0
}

func IndexOf(list []string, s string) int {
	for idx, v := range list {
		if v == s {
			return idx
		}
	}
	return -1
}

func ShowObjectDiff(l zerolog.Logger, oldObject, newObject interface{}) {
	oldObjectType := fmt.Sprintf("%T", oldObject)
	newObjectType := fmt.Sprintf("%T", newObject)
	if oldObjectType != newObjectType {
		l.Error().Msgf("can't compare two different object types: %s and %s", oldObjectType, newObjectType)
		return
	}
	diff := cmp.Diff(oldObject, newObject)
	if diff != "" {
		l.Trace().Msgf("object %s has changed, diff:\n%s", oldObjectType, diff)
	}
}

func SortedMapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
