package level

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PortalIDPrefix tags every portal id. A brick has an id with this prefix
// iff its type is portal.
const PortalIDPrefix = "portal-"

// IsPortalID reports whether id is portal-id shaped.
func IsPortalID(id string) bool {
	return strings.HasPrefix(id, PortalIDPrefix)
}

func mintPortalID() string {
	return fmt.Sprintf("%s%d-%s", PortalIDPrefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// unpairedPortalIDs returns, in first-seen order, every portal id carried by
// exactly one brick. Pairing is a relation over ids, rebuilt on demand.
func (l *Level) unpairedPortalIDs() []string {
	counts := make(map[string]int)
	var order []string
	for i := range l.Bricks {
		b := &l.Bricks[i]
		if b.Type != TypePortal || b.ID == "" {
			continue
		}
		if counts[b.ID] == 0 {
			order = append(order, b.ID)
		}
		counts[b.ID]++
	}
	var unpaired []string
	for _, id := range order {
		if counts[id] == 1 {
			unpaired = append(unpaired, id)
		}
	}
	return unpaired
}

// NextPortalID returns the id for one newly placed portal: the first
// unpaired id, so the new portal completes an existing pair, or a fresh id
// opening a new pair.
func (l *Level) NextPortalID() string {
	if ids := l.unpairedPortalIDs(); len(ids) > 0 {
		return ids[0]
	}
	return mintPortalID()
}

// GeneratePairIDs assigns ids for count portals placed in one batch. Existing
// unpaired ids are consumed first; the remainder is minted two at a time so
// that within the batch every fresh id is used by a pair (an odd remainder
// leaves one new id unpaired, the first member of the next pair).
func (l *Level) GeneratePairIDs(count int) []string {
	ids := make([]string, 0, count)
	for _, id := range l.unpairedPortalIDs() {
		if len(ids) == count {
			return ids
		}
		ids = append(ids, id)
	}
	for len(ids) < count {
		fresh := mintPortalID()
		ids = append(ids, fresh)
		if len(ids) < count {
			ids = append(ids, fresh)
		}
	}
	return ids
}
