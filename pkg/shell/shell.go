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
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
)

var ErrFaviconNotFound = errors.Errorf("favicon element '#%s' is not found in document", FaviconElementID)

type Shell struct {
	log     zerolog.Logger
	variant lcmcommon.BuildVariant

	once    sync.Once
	widgets WidgetDefaults
	err     error
}

func NewShell(log zerolog.Logger, variant lcmcommon.BuildVariant) *Shell {
	return &Shell{log: log, variant: variant}
}

// Bootstrap prepares widget defaults and brands document. It runs only once,
// next calls return result of the first one and do not touch document.
func (s *Shell) Bootstrap(doc Document) error {
	s.once.Do(func() {
		s.widgets = DefaultWidgets()
		s.err = s.applyBranding(doc)
	})
	return s.err
}

// Widgets returns widget defaults, valid after Bootstrap call
func (s *Shell) Widgets() WidgetDefaults {
	return s.widgets
}

func (s *Shell) Variant() lcmcommon.BuildVariant {
	return s.variant
}

func (s *Shell) applyBranding(doc Document) error {
	branding, ok := BrandingFor(s.variant)
	if !ok {
		s.log.Debug().Msgf("no branding for build variant '%s'", s.variant)
		return nil
	}
	// check favicon before any change, so document is never branded partially
	favicon := doc.GetElementByID(FaviconElementID)
	if favicon == nil {
		s.log.Error().Msgf("failed to brand document for build variant '%s'", s.variant)
		return ErrFaviconNotFound
	}
	if branding.Stylesheet != "" {
		link := doc.CreateElement("link")
		link.SetAttribute("rel", "stylesheet")
		link.SetAttribute("href", branding.Stylesheet)
		if err := doc.Head().AppendChild(link); err != nil {
			return errors.Wrapf(err, "failed to append stylesheet '%s'", branding.Stylesheet)
		}
	}
	doc.SetTitle(branding.Title)
	favicon.SetAttribute("href", branding.Favicon)
	s.log.Info().Msgf("document branded for build variant '%s': title '%s'", s.variant, branding.Title)
	return nil
}
