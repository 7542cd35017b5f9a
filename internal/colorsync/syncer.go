package colorsync

import (
	"time"

	"arton360/internal/logger"
)

// SwatchDelay is how long to wait after a swatch click before re-probing,
// so third-party swatch widgets have updated their backing input.
const SwatchDelay = 50 * time.Millisecond

// Config carries the per-page handoff: the slug-to-image map and the
// fallback slug used when nothing is selected on load. It is also the
// JSON shape served to the shop page.
type Config struct {
	Map         map[string]string `json:"map"`
	DefaultSlug string            `json:"defaultSlug"`
	// ColorAttribute is the variation attribute key carried by the
	// variation-found notification, e.g. "attribute_pa_color".
	ColorAttribute string `json:"colorAttribute"`
}

// Syncer keeps an ImageView consistent with the shopper's color
// selection. It tracks no selection state; every trigger fully re-derives
// and fully overwrites, so repeated triggers for one logical selection
// are idempotent.
type Syncer struct {
	cfg      Config
	resolver *Resolver
	view     *ImageView
	logger   *logger.Logger
	after    func(time.Duration, func())
}

// Option adjusts a Syncer at construction.
type Option func(*Syncer)

// WithTimer replaces the delayed-recheck timer, used by tests to run the
// recheck synchronously.
func WithTimer(after func(time.Duration, func())) Option {
	return func(s *Syncer) { s.after = after }
}

// New builds a Syncer and performs the initial reconcile: the current
// page selection when one exists, otherwise the configured default.
func New(cfg Config, resolver *Resolver, view *ImageView, logger *logger.Logger, opts ...Option) *Syncer {
	s := &Syncer{
		cfg:      cfg,
		resolver: resolver,
		view:     view,
		logger:   logger,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	initial := resolver.Current()
	if initial == "" {
		initial = cfg.DefaultSlug
	}
	s.apply(initial)

	return s
}

// Reconcile re-derives the selection and applies it.
func (s *Syncer) Reconcile() {
	s.apply(s.resolver.Current())
}

// OnChange handles a change event on the color inputs.
func (s *Syncer) OnChange() {
	s.Reconcile()
}

// OnVariationFound handles the variation-resolved notification, which
// carries the variation's attributes directly and bypasses re-derivation.
func (s *Syncer) OnVariationFound(attributes map[string]string) {
	slug, ok := attributes[s.cfg.ColorAttribute]
	if !ok {
		return
	}
	s.apply(slug)
}

// OnFormChange handles a generic change on the enclosing selection form.
func (s *Syncer) OnFormChange() {
	if slug := s.resolver.Current(); slug != "" {
		s.apply(slug)
	}
}

// OnSwatchClick schedules a delayed re-probe after a click on a visual
// swatch element. A second click before the timer fires simply queues
// another idempotent recheck.
func (s *Syncer) OnSwatchClick() {
	s.after(SwatchDelay, func() {
		if slug := s.resolver.Current(); slug != "" {
			s.apply(slug)
		}
	})
}

// apply swaps the base image for a slug. Empty or unmapped slugs leave
// the previously displayed image untouched.
func (s *Syncer) apply(slug string) {
	if slug == "" {
		s.logger.Warn("no color selected, keeping current image")
		return
	}

	url, ok := s.cfg.Map[slug]
	if !ok {
		s.logger.Warn("no image for color %q, keeping current image", slug)
		return
	}

	s.view.SetSource(url)
	s.logger.Debug("swapped base image to %s (%s)", slug, url)
}
