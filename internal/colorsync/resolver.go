package colorsync

// SelectionSource is one page representation of the chosen color. A source
// may be absent entirely (the page never rendered it), in which case the
// resolver moves on to the next one.
type SelectionSource interface {
	// Value returns the selected slug and whether this source exists on
	// the page at all. An existing source with nothing selected returns
	// ("", true).
	Value() (string, bool)
}

// RadioGroup models a set of swatch radio inputs.
type RadioGroup struct {
	Present bool
	Checked string
}

func (r *RadioGroup) Value() (string, bool) {
	if !r.Present || r.Checked == "" {
		// An unchecked radio group does not count as a selection source,
		// matching the :checked probe.
		return "", false
	}
	return r.Checked, true
}

// Dropdown models the standard variation select element.
type Dropdown struct {
	Present  bool
	Selected string
}

func (d *Dropdown) Value() (string, bool) {
	if !d.Present {
		return "", false
	}
	return d.Selected, true
}

// HiddenField models the hidden input some swatch plugins keep in sync.
type HiddenField struct {
	Present bool
	Current string
}

func (h *HiddenField) Value() (string, bool) {
	if !h.Present {
		return "", false
	}
	return h.Current, true
}

// Resolver derives the current color selection by probing its sources in
// fixed priority order. It keeps no state of its own; every call is a
// fresh derivation.
type Resolver struct {
	sources []SelectionSource
}

func NewResolver(sources ...SelectionSource) *Resolver {
	return &Resolver{sources: sources}
}

// Current returns the first present source's slug, or "" when no source
// exists on the page.
func (r *Resolver) Current() string {
	for _, src := range r.sources {
		if slug, ok := src.Value(); ok {
			return slug
		}
	}
	return ""
}
