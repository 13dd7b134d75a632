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
	"context"
	"net/http"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/Mirantis/pelagia-dashboard/pkg/backend"
	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Source delivers notification visibility until context is done,
// returned channel is closed when subscription is released
type Source interface {
	Subscribe(ctx context.Context) <-chan bool
}

// SummarySource delivers cluster summary snapshots
type SummarySource interface {
	Subscribe(ctx context.Context) <-chan *lcmcommon.Summary
}

// offerLatest puts value into single-slot channel, replacing not yet consumed one
func offerLatest[T any](ch chan T, value T) {
	for {
		select {
		case ch <- value:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

// Publisher is a push based source, new subscribers get the last published value
type Publisher struct {
	mu   sync.Mutex
	last *bool
	subs map[chan bool]struct{}
}

func NewPublisher() *Publisher {
	return &Publisher{subs: map[chan bool]struct{}{}}
}

func (p *Publisher) Publish(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = &visible
	for ch := range p.subs {
		offerLatest(ch, visible)
	}
}

func (p *Publisher) Subscribe(ctx context.Context) <-chan bool {
	ch := make(chan bool, 1)
	p.mu.Lock()
	p.subs[ch] = struct{}{}
	if p.last != nil {
		offerLatest(ch, *p.last)
	}
	p.mu.Unlock()
	go func() {
		<-ctx.Done()
		p.mu.Lock()
		delete(p.subs, ch)
		close(ch)
		p.mu.Unlock()
	}()
	return ch
}

// poller periodically fetches backend endpoint, first fetch is done immediately
type poller struct {
	log      zerolog.Logger
	client   *backend.Client
	path     string
	interval time.Duration
}

func (p *poller) run(ctx context.Context, handle func(payload []byte) error) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		body, err := p.client.Do(ctx, http.MethodGet, p.path, nil)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.log.Error().Err(err).Msgf("failed to poll '%s'", p.path)
		} else if err := handle(body); err != nil {
			p.log.Error().Err(err).Msgf("failed to decode '%s' response", p.path)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// MotdSource polls message of the day, visible only for well-formed records
type MotdSource struct {
	poller
}

func NewMotdSource(log zerolog.Logger, client *backend.Client, interval time.Duration) *MotdSource {
	return &MotdSource{poller{log: log, client: client, path: lcmcommon.MotdAPIPath, interval: interval}}
}

func (s *MotdSource) Subscribe(ctx context.Context) <-chan bool {
	ch := make(chan bool, 1)
	go func() {
		defer close(ch)
		s.run(ctx, func(body []byte) error {
			var payload interface{}
			if err := json.Unmarshal(body, &payload); err != nil {
				// malformed payload is treated as absent motd
				offerLatest(ch, false)
				return err
			}
			offerLatest(ch, IsMotdRecord(payload))
			return nil
		})
	}()
	return ch
}

// SummaryPoller polls cluster summary
type SummaryPoller struct {
	poller
}

func NewSummaryPoller(log zerolog.Logger, client *backend.Client, interval time.Duration) *SummaryPoller {
	return &SummaryPoller{poller{log: log, client: client, path: lcmcommon.SummaryAPIPath, interval: interval}}
}

func (s *SummaryPoller) Subscribe(ctx context.Context) <-chan *lcmcommon.Summary {
	ch := make(chan *lcmcommon.Summary, 1)
	go func() {
		defer close(ch)
		s.run(ctx, func(body []byte) error {
			var summary *lcmcommon.Summary
			if err := json.Unmarshal(body, &summary); err != nil {
				return err
			}
			offerLatest(ch, summary)
			return nil
		})
	}()
	return ch
}
