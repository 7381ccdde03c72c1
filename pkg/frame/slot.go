package frame

import "fmt"

// Slot formats the canonical slot name for a 1-indexed group and item,
// the sole addressing scheme linking layout geometry to content.
func Slot(group, item int) string {
	return fmt.Sprintf("group%d_%d", group, item)
}

// ParseSlot extracts the 1-indexed group and item from a slot name.
// It reports false for anything that is not of the group{G}_{I} form
// with positive indices.
func ParseSlot(name string) (group, item int, ok bool) {
	n, err := fmt.Sscanf(name, "group%d_%d", &group, &item)
	if err != nil || n != 2 || group < 1 || item < 1 {
		return 0, 0, false
	}
	// Sscanf stops at the last verb, so "group1_2x" would slip through.
	if Slot(group, item) != name {
		return 0, 0, false
	}
	return group, item, true
}

// GroupItemCount returns the number of item cells the 1-indexed group
// lays out: the highest item index configured for it, and at least one
// so an unconfigured group still renders a single empty cell.
func GroupItemCount(slots map[string]ContentItemConfig, group int) int {
	max := 1
	for name := range slots {
		g, i, ok := ParseSlot(name)
		if ok && g == group && i > max {
			max = i
		}
	}
	return max
}
