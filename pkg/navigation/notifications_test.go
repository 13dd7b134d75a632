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

package navigation

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
)

type update struct {
	name    string
	visible bool
}

func TestNotificationSetApply(t *testing.T) {
	tests := []struct {
		name            string
		updates         []update
		expected        []string
		expectedChanges []bool
	}{
		{
			name:            "show keeps insertion order",
			updates:         []update{{MotdNotification, true}, {PwdDisplayedNotification, true}, {TelemetryNotification, true}},
			expected:        []string{MotdNotification, PwdDisplayedNotification, TelemetryNotification},
			expectedChanges: []bool{true, true, true},
		},
		{
			name:            "show twice is idempotent",
			updates:         []update{{MotdNotification, true}, {MotdNotification, true}},
			expected:        []string{MotdNotification},
			expectedChanges: []bool{true, false},
		},
		{
			name:            "hide absent is no-op",
			updates:         []update{{MotdNotification, false}},
			expected:        []string{},
			expectedChanges: []bool{false},
		},
		{
			name: "hide from the middle",
			updates: []update{
				{PwdDisplayedNotification, true}, {MotdNotification, true}, {StorageInsightsNotification, true},
				{MotdNotification, false},
			},
			expected:        []string{PwdDisplayedNotification, StorageInsightsNotification},
			expectedChanges: []bool{true, true, true, true},
		},
		{
			name:            "show again goes to the end",
			updates:         []update{{PwdDisplayedNotification, true}, {MotdNotification, true}, {PwdDisplayedNotification, false}, {PwdDisplayedNotification, true}},
			expected:        []string{MotdNotification, PwdDisplayedNotification},
			expectedChanges: []bool{true, true, true, true},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			set := NotificationSet{}
			changes := []bool{}
			for _, u := range test.updates {
				changes = append(changes, set.Apply(u.name, u.visible))
			}
			assert.Equal(t, test.expected, set.Names())
			assert.Equal(t, test.expectedChanges, changes)
		})
	}
}

func TestNotificationSetRandomUpdates(t *testing.T) {
	names := []string{PwdDisplayedNotification, TelemetryNotification, MotdNotification, CallHomeNotification, StorageInsightsNotification}
	r := rand.New(rand.NewSource(42))
	set := NotificationSet{}
	latest := map[string]bool{}
	for i := 0; i < 1000; i++ {
		name := names[r.Intn(len(names))]
		visible := r.Intn(2) == 1
		set.Apply(name, visible)
		latest[name] = visible

		displayed := set.Names()
		seen := map[string]bool{}
		for _, n := range displayed {
			assert.False(t, seen[n], "duplicate notification %s", n)
			seen[n] = true
		}
		for n, v := range latest {
			assert.Equal(t, v, seen[n], "notification %s must follow latest value", n)
		}
		class := TopNotificationClass(set.Len())
		assert.Equal(t, strconv.Itoa(len(displayed)), strings.TrimPrefix(class, "top-notification-"))
	}
}

func TestNotificationSetNamesIsCopy(t *testing.T) {
	set := NotificationSet{}
	set.Apply(MotdNotification, true)
	names := set.Names()
	names[0] = "changed"
	assert.Equal(t, []string{MotdNotification}, set.Names())
}

func TestTopNotificationClass(t *testing.T) {
	assert.Equal(t, "top-notification-0", TopNotificationClass(0))
	assert.Equal(t, "top-notification-5", TopNotificationClass(5))
}

func TestIsMotdRecord(t *testing.T) {
	tests := []struct {
		name     string
		payload  interface{}
		expected bool
	}{
		{name: "nil", payload: nil},
		{name: "string", payload: "message"},
		{name: "number", payload: float64(1)},
		{name: "bool", payload: true},
		{name: "list", payload: []interface{}{"message"}},
		{name: "nil motd pointer", payload: (*lcmcommon.Motd)(nil)},
		{name: "json object", payload: map[string]interface{}{"message": "hi"}, expected: true},
		{name: "empty json object", payload: map[string]interface{}{}, expected: true},
		{name: "motd pointer", payload: &lcmcommon.Motd{Message: "hi"}, expected: true},
		{name: "motd value", payload: lcmcommon.Motd{Message: "hi"}, expected: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, IsMotdRecord(test.payload))
		})
	}
}
