package level

import "testing"

func portalAt(l *Level, col, row int, id string) {
	placed(l, Brick{Type: TypePortal, Col: col, Row: row, ID: id})
}

func idCounts(l *Level) map[string]int {
	counts := make(map[string]int)
	for _, b := range l.Bricks {
		if b.Type == TypePortal {
			counts[b.ID]++
		}
	}
	return counts
}

func TestNextPortalID(t *testing.T) {
	t.Run("fresh_on_empty", func(t *testing.T) {
		l := testLevel()
		id := l.NextPortalID()
		if !IsPortalID(id) {
			t.Fatalf("minted id %q lacks portal prefix", id)
		}
	})

	t.Run("reuses_unpaired", func(t *testing.T) {
		l := testLevel()
		portalAt(l, 0, 0, "portal-aa")
		if id := l.NextPortalID(); id != "portal-aa" {
			t.Fatalf("expected unpaired id to be reused, got %q", id)
		}
	})

	t.Run("fresh_when_all_paired", func(t *testing.T) {
		l := testLevel()
		portalAt(l, 0, 0, "portal-aa")
		portalAt(l, 1, 0, "portal-aa")
		if id := l.NextPortalID(); id == "portal-aa" {
			t.Fatalf("paired id must not be reused")
		}
	})

	t.Run("first_unpaired_wins", func(t *testing.T) {
		l := testLevel()
		portalAt(l, 0, 0, "portal-aa")
		portalAt(l, 1, 0, "portal-bb")
		if id := l.NextPortalID(); id != "portal-aa" {
			t.Fatalf("expected first unpaired id, got %q", id)
		}
	})
}

func TestGeneratePairIDs(t *testing.T) {
	t.Run("pairs_two_at_a_time", func(t *testing.T) {
		l := testLevel()
		ids := l.GeneratePairIDs(4)
		if len(ids) != 4 {
			t.Fatalf("expected 4 ids, got %d", len(ids))
		}
		if ids[0] != ids[1] || ids[2] != ids[3] {
			t.Fatalf("fresh ids must pair up: %v", ids)
		}
		if ids[0] == ids[2] {
			t.Fatalf("distinct pairs must not share ids: %v", ids)
		}
	})

	t.Run("consumes_unpaired_first", func(t *testing.T) {
		l := testLevel()
		portalAt(l, 0, 0, "portal-aa")
		ids := l.GeneratePairIDs(3)
		if ids[0] != "portal-aa" {
			t.Fatalf("unpaired id should be consumed first, got %v", ids)
		}
		if ids[1] != ids[2] {
			t.Fatalf("remainder should mint one pair, got %v", ids)
		}
	})

	t.Run("odd_remainder_opens_pair", func(t *testing.T) {
		l := testLevel()
		ids := l.GeneratePairIDs(3)
		if ids[0] != ids[1] || ids[2] == ids[0] {
			t.Fatalf("want [a a b], got %v", ids)
		}
	})
}

func TestPortalPairCountsStayBounded(t *testing.T) {
	l := testLevel()
	// simulate a long placement sequence through the allocator
	for i := 0; i < 10; i++ {
		id := l.NextPortalID()
		portalAt(l, i%l.Width, i/l.Width, id)
		for _, n := range idCounts(l) {
			if n > 2 {
				t.Fatalf("id count exceeded 2 after placement %d", i)
			}
		}
	}
	for id, n := range idCounts(l) {
		if n != 2 {
			t.Fatalf("id %q stabilized at %d, want 2", id, n)
		}
	}
}
