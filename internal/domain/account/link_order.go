package account

// ReorderForInsert opens a slot for newLink among existing. The requested
// order number is clamped to len(existing)+1 and written back to newLink.
// It returns false when newLink carries no order number on a non-empty
// profile; siblings are left untouched in that case and the caller owns the
// resulting gap.
func ReorderForInsert(existing []*ProfileLink, newLink *ProfileLink) bool {
	if len(existing) == 0 {
		newLink.OrderNumber = intPtr(1)
		return true
	}
	if newLink.OrderNumber == nil {
		return false
	}

	target := clamp(*newLink.OrderNumber, len(existing)+1)
	newLink.OrderNumber = intPtr(target)

	for _, l := range existing {
		if l.OrderNumber != nil && *l.OrderNumber >= target {
			*l.OrderNumber++
		}
	}
	return true
}

// ReorderForMove shifts the siblings of current so it can take the requested
// position, and returns the order number current must be given. A nil
// request keeps the current position.
func ReorderForMove(existing []*ProfileLink, current *ProfileLink, requested *int) *int {
	if requested == nil {
		return current.OrderNumber
	}
	if current.OrderNumber == nil {
		return intPtr(*requested)
	}

	from := *current.OrderNumber
	to := clamp(*requested, len(existing))
	if from == to {
		return intPtr(to)
	}

	for _, l := range existing {
		if l.ID == current.ID || l.OrderNumber == nil {
			continue
		}
		n := *l.OrderNumber
		switch {
		case from < to && n > from && n <= to:
			*l.OrderNumber--
		case from > to && n >= to && n < from:
			*l.OrderNumber++
		}
	}
	return intPtr(to)
}

// ReorderForDelete closes the gap left by deleted. remaining must no longer
// contain it.
func ReorderForDelete(remaining []*ProfileLink, deleted *ProfileLink) {
	if deleted.OrderNumber == nil {
		return
	}
	for _, l := range remaining {
		if l.OrderNumber != nil && *l.OrderNumber > *deleted.OrderNumber {
			*l.OrderNumber--
		}
	}
}

func clamp(n, upper int) int {
	if upper < 1 {
		upper = 1
	}
	if n > upper {
		return upper
	}
	if n < 1 {
		return 1
	}
	return n
}

func intPtr(n int) *int {
	return &n
}
