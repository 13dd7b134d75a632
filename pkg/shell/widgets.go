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

// PopoverConfig is a configuration passed to every popover widget instance
type PopoverConfig struct {
	AutoClose string `json:"autoClose"`
	Container string `json:"container"`
	Placement string `json:"placement"`
}

// TooltipConfig is a configuration passed to every tooltip widget instance
type TooltipConfig struct {
	Container string `json:"container"`
	// empty means widget library default
	Placement string `json:"placement,omitempty"`
}

type WidgetDefaults struct {
	Popover PopoverConfig `json:"popover"`
	Tooltip TooltipConfig `json:"tooltip"`
}

func DefaultWidgets() WidgetDefaults {
	return WidgetDefaults{
		Popover: PopoverConfig{
			AutoClose: "outside",
			Container: "body",
			Placement: "bottom",
		},
		Tooltip: TooltipConfig{
			Container: "body",
		},
	}
}

// NewPopover returns config for a single popover, non-empty override fields win
func (w WidgetDefaults) NewPopover(override PopoverConfig) PopoverConfig {
	config := w.Popover
	if override.AutoClose != "" {
		config.AutoClose = override.AutoClose
	}
	if override.Container != "" {
		config.Container = override.Container
	}
	if override.Placement != "" {
		config.Placement = override.Placement
	}
	return config
}

// NewTooltip returns config for a single tooltip, non-empty override fields win
func (w WidgetDefaults) NewTooltip(override TooltipConfig) TooltipConfig {
	config := w.Tooltip
	if override.Container != "" {
		config.Container = override.Container
	}
	if override.Placement != "" {
		config.Placement = override.Placement
	}
	return config
}
