package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlot(t *testing.T) {
	assert.Equal(t, "group1_1", Slot(1, 1))
	assert.Equal(t, "group2_3", Slot(2, 3))
	assert.Equal(t, "group12_4", Slot(12, 4))
}

func TestParseSlot(t *testing.T) {
	cases := []struct {
		name  string
		group int
		item  int
		ok    bool
	}{
		{"group1_1", 1, 1, true},
		{"group3_2", 3, 2, true},
		{"group12_4", 12, 4, true},
		{"group0_1", 0, 0, false},
		{"group1_0", 0, 0, false},
		{"group-1_2", 0, 0, false},
		{"header", 0, 0, false},
		{"group_1", 0, 0, false},
		{"group1_2x", 0, 0, false},
		{"group1_2 ", 0, 0, false},
		{"group01_2", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		g, i, ok := ParseSlot(tc.name)
		assert.Equal(t, tc.ok, ok, "name %q", tc.name)
		assert.Equal(t, tc.group, g, "name %q", tc.name)
		assert.Equal(t, tc.item, i, "name %q", tc.name)
	}
}

func TestSlotRoundTrip(t *testing.T) {
	for g := 1; g <= 4; g++ {
		for i := 1; i <= 3; i++ {
			pg, pi, ok := ParseSlot(Slot(g, i))
			assert.True(t, ok)
			assert.Equal(t, g, pg)
			assert.Equal(t, i, pi)
		}
	}
}

func TestGroupItemCount(t *testing.T) {
	slots := map[string]ContentItemConfig{
		"group1_1": {Kind: "gauge"},
		"group1_3": {Kind: "text"},
		"group2_1": {Kind: "bar"},
		"header":   {Kind: "title"},
	}

	// Gaps count: group 1 has its highest index at 3 even though
	// group1_2 is unconfigured.
	assert.Equal(t, 3, GroupItemCount(slots, 1))
	assert.Equal(t, 1, GroupItemCount(slots, 2))
	assert.Equal(t, 1, GroupItemCount(slots, 3), "unconfigured group still gets one cell")
	assert.Equal(t, 1, GroupItemCount(nil, 1))
}
