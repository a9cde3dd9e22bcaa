package panel

// Navigation helpers over caller-supplied visible lengths. The
// navigator holds no list data: every call receives the post-filter
// length of the list it operates on, so a shrunken filter result can
// never be over-indexed.

// Move shifts idx by delta with wraparound over a visible list of the
// given length. A zero-length list pins the index at 0.
func Move(idx, visible, delta int) int {
	if visible <= 0 {
		return 0
	}
	idx = ClampIndex(idx, visible)
	idx = (idx + delta) % visible
	if idx < 0 {
		idx += visible
	}
	return idx
}

// ClampIndex clamps idx into [0, visible-1], returning 0 for an empty
// list. This clamp is applied on every access to a visible list, not
// only after explicit navigation, so selection stays safe across
// filter-induced shrinkage.
func ClampIndex(idx, visible int) int {
	if visible <= 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx >= visible {
		return visible - 1
	}
	return idx
}

// CycleFocus advances focus cyclically over count sections, appending
// the detail pseudo-section to the cycle while a detail is open.
func CycleFocus(cur, count int, detail, reverse bool) int {
	if count <= 0 {
		if detail {
			return Detail
		}
		return 0
	}

	// Cycle order: section 0..count-1, then detail (when open).
	last := count - 1
	if reverse {
		switch {
		case cur == Detail:
			return last
		case cur <= 0:
			if detail {
				return Detail
			}
			return last
		default:
			return cur - 1
		}
	}

	switch {
	case cur == Detail:
		return 0
	case cur >= last:
		if detail {
			return Detail
		}
		return 0
	default:
		return cur + 1
	}
}

// Current resolves the currently selected item of a visible list,
// clamping the index first. ok is false for an empty list.
func Current[T Record](visible []T, idx int) (item T, ok bool) {
	if len(visible) == 0 {
		return item, false
	}
	return visible[ClampIndex(idx, len(visible))], true
}
