package order

// Drag tracks one drag gesture: the entry picked up and the entry it is
// currently hovering. Pinned entries can be neither picked up nor dropped on.
type Drag[K comparable] struct {
	Pinned func(K) bool

	source    K
	target    K
	active    bool
	hasTarget bool
}

func (d *Drag[K]) pinned(k K) bool {
	return d.Pinned != nil && d.Pinned(k)
}

// Start picks up k. It reports false for pinned entries.
func (d *Drag[K]) Start(k K) bool {
	if d.pinned(k) {
		return false
	}
	d.source = k
	d.active = true
	d.clearTarget()
	return true
}

// Over records k as the drop target under the pointer. Hovering without an
// active source, over the source itself, or over a pinned entry is ignored.
func (d *Drag[K]) Over(k K) bool {
	if !d.active || k == d.source || d.pinned(k) {
		return false
	}
	d.target = k
	d.hasTarget = true
	return true
}

// Drop ends the gesture on k and returns the source to move. ok is false when
// nothing was picked up, k is the source, or k is pinned. The session is reset
// either way.
func (d *Drag[K]) Drop(k K) (src K, ok bool) {
	defer d.End()
	if !d.active || k == d.source || d.pinned(k) {
		var zero K
		return zero, false
	}
	return d.source, true
}

// End abandons the gesture.
func (d *Drag[K]) End() {
	var zero K
	d.source = zero
	d.active = false
	d.clearTarget()
}

func (d *Drag[K]) clearTarget() {
	var zero K
	d.target = zero
	d.hasTarget = false
}

// Source returns the entry being dragged.
func (d *Drag[K]) Source() (K, bool) {
	return d.source, d.active
}

// Target returns the entry currently hovered.
func (d *Drag[K]) Target() (K, bool) {
	return d.target, d.hasTarget
}

// Active reports whether something is picked up.
func (d *Drag[K]) Active() bool {
	return d.active
}
