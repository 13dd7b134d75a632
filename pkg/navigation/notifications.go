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
	"fmt"

	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
)

// top notification names, used as css hooks by frontend
const (
	PwdDisplayedNotification = "isPwdDisplayed"
	TelemetryNotification    = "telemetryNotificationEnabled"
	MotdNotification         = "motdNotificationEnabled"
	CallHomeNotification     = "callHomeNotificationEnabled"
	// misspelled, but frontend and stored user settings rely on exact name
	StorageInsightsNotification = "storagteInsightsEnabled"
)

const topNotificationClassPrefix = "top-notification-"

// NotificationSet is an ordered list of displayed notifications without duplicates
type NotificationSet struct {
	names []string
}

// Apply shows or hides notification and reports whether set has changed
func (s *NotificationSet) Apply(name string, visible bool) bool {
	idx := lcmcommon.IndexOf(s.names, name)
	if visible {
		if idx >= 0 {
			return false
		}
		s.names = append(s.names, name)
		return true
	}
	if idx < 0 {
		return false
	}
	s.names = append(s.names[:idx], s.names[idx+1:]...)
	return true
}

func (s *NotificationSet) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

func (s *NotificationSet) Len() int {
	return len(s.names)
}

func TopNotificationClass(count int) string {
	return fmt.Sprintf("%s%d", topNotificationClassPrefix, count)
}

// IsMotdRecord checks that motd payload is a record, not just any non-empty value
func IsMotdRecord(payload interface{}) bool {
	switch v := payload.(type) {
	case map[string]interface{}:
		return true
	case *lcmcommon.Motd:
		return v != nil
	case lcmcommon.Motd:
		return true
	}
	return false
}
