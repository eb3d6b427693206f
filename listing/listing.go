// Package listing models the public provider carousel: the bundled provider
// directory merged with the live application feed, paged four cards at a time
// with clamped stepping and mouse-drag scrolling.
package listing

import (
	"context"

	"github.com/swiftfix/swiftfix-go/applications"
	"github.com/swiftfix/swiftfix-go/providers"
)

// VisibleCount is how many cards the carousel shows at once.
const VisibleCount = 4

// dragWalkFactor scales pointer movement into scroll distance.
const dragWalkFactor = 2

// Item is one carousel card. Exactly one of the two members is set:
// Provider for bundled directory entries, Applicant for entries from the
// live feed.
type Item struct {
	Provider  *providers.Provider
	Applicant *applications.Summary
}

// View is the carousel's state. It is not safe for concurrent use; drive it
// from a single UI loop.
type View struct {
	service string
	apps    []applications.Summary
	index   int

	dragging   bool
	dragStartX float64
	dragOrigin float64
	scrollPos  float64
}

// NewView returns a view showing every service with the feed not yet loaded.
func NewView() *View {
	return &View{service: providers.FilterAll}
}

// Load fetches the application feed once and stores it. On error the view
// keeps whatever it had (an empty feed on first load) so the bundled
// directory still renders.
func (v *View) Load(ctx context.Context, f Fetcher) error {
	apps, err := f.FetchApplications(ctx)
	if err != nil {
		return err
	}
	v.apps = apps
	return nil
}

// SelectService switches the category filter and rewinds to the first page.
func (v *View) SelectService(service string) {
	v.service = service
	v.index = 0
}

// Service returns the selected category filter.
func (v *View) Service() string {
	return v.service
}

// Items returns the merged card list: providers matching the filter followed
// by every fetched application. The feed is appended unfiltered; applicants
// carry a profession, not one of the directory's service categories.
func (v *View) Items() []Item {
	matched := providers.FilterByService(v.service)
	items := make([]Item, 0, len(matched)+len(v.apps))
	for i := range matched {
		items = append(items, Item{Provider: &matched[i]})
	}
	for i := range v.apps {
		items = append(items, Item{Applicant: &v.apps[i]})
	}
	return items
}

// Index returns the offset of the first visible card.
func (v *View) Index() int {
	return v.index
}

// maxIndex is the largest offset that still fills the window from the end.
func (v *View) maxIndex() int {
	if n := len(v.Items()) - VisibleCount; n > 0 {
		return n
	}
	return 0
}

// Next advances one card, stopping at the last full window.
func (v *View) Next() {
	if v.index < v.maxIndex() {
		v.index++
	}
}

// Previous steps back one card, stopping at the first.
func (v *View) Previous() {
	if v.index > 0 {
		v.index--
	}
}

// AtStart reports whether Previous would be a no-op; the UI disables the
// button then.
func (v *View) AtStart() bool {
	return v.index == 0
}

// AtEnd reports whether Next would be a no-op.
func (v *View) AtEnd() bool {
	return v.index >= v.maxIndex()
}

// Visible returns the window of up to VisibleCount cards at the current
// offset.
func (v *View) Visible() []Item {
	items := v.Items()
	if v.index >= len(items) {
		return []Item{}
	}
	end := v.index + VisibleCount
	if end > len(items) {
		end = len(items)
	}
	return items[v.index:end]
}

// BeginDrag starts a drag at the given pointer position.
func (v *View) BeginDrag(x float64) {
	v.dragging = true
	v.dragStartX = x
	v.dragOrigin = v.scrollPos
}

// MoveDrag scrolls against the pointer's travel since BeginDrag, amplified by
// dragWalkFactor. Ignored when no drag is active.
func (v *View) MoveDrag(x float64) {
	if !v.dragging {
		return
	}
	walk := (x - v.dragStartX) * dragWalkFactor
	v.scrollPos = v.dragOrigin - walk
}

// EndDrag stops the drag; the pointer leaving the carousel ends it too.
func (v *View) EndDrag() {
	v.dragging = false
}

// Dragging reports whether a drag is in progress.
func (v *View) Dragging() bool {
	return v.dragging
}

// ScrollPos returns the drag-scroll offset.
func (v *View) ScrollPos() float64 {
	return v.scrollPos
}
