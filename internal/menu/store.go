package menu

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrInvalidConfig reports a heading set that cannot form a menu.
	ErrInvalidConfig = errors.New("invalid menu configuration")
	// ErrOutOfRange reports a heading identifier that was never assigned.
	ErrOutOfRange = errors.New("heading index out of range")
)

// HeadingID identifies a heading by insertion order, starting at 0.
type HeadingID int

// ItemRef addresses a sub-item node. NoItem marks an empty ring or a closed
// sub-menu.
type ItemRef int

const NoItem ItemRef = -1

// HeadingNode is a top-level menu entry.
type HeadingNode struct {
	ID    HeadingID
	Label string
}

// SubItemNode is a leaf entry owned by exactly one heading.
type SubItemNode struct {
	Heading HeadingID
	Label   string
}

// Store owns the heading ring and every heading's sub-item ring. It is built
// once and read-only afterwards.
type Store struct {
	headings     []HeadingNode
	headingLinks arena
	items        []SubItemNode
	itemLinks    arena
	subHeads     []ItemRef
}

// NewStore builds the heading ring from labels, assigning identifiers in
// input order.
func NewStore(headingLabels []string) (*Store, error) {
	if len(headingLabels) == 0 {
		return nil, fmt.Errorf("%w: no headings supplied", ErrInvalidConfig)
	}
	s := &Store{
		headings:     make([]HeadingNode, 0, len(headingLabels)),
		headingLinks: make(arena, 0, len(headingLabels)),
		subHeads:     make([]ItemRef, 0, len(headingLabels)),
	}
	head := -1
	for i, label := range headingLabels {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, fmt.Errorf("%w: heading %d has an empty label", ErrInvalidConfig, i)
		}
		var idx int
		idx, head = s.headingLinks.push(head)
		s.headings = append(s.headings, HeadingNode{ID: HeadingID(idx), Label: label})
		s.subHeads = append(s.subHeads, NoItem)
	}
	return s, nil
}

// InsertSubItem appends label to the end of the heading's sub-item ring.
func (s *Store) InsertSubItem(headingIndex int, label string) error {
	if !s.validHeading(HeadingID(headingIndex)) {
		return fmt.Errorf("%w: %d (have %d headings)", ErrOutOfRange, headingIndex, len(s.headings))
	}
	_, head := s.itemLinks.push(int(s.subHeads[headingIndex]))
	s.items = append(s.items, SubItemNode{Heading: HeadingID(headingIndex), Label: label})
	s.subHeads[headingIndex] = ItemRef(head)
	return nil
}

// SubMenuOf returns the head of the heading's sub-item ring, or NoItem when
// the heading has no sub-items or does not exist.
func (s *Store) SubMenuOf(id HeadingID) ItemRef {
	if !s.validHeading(id) {
		return NoItem
	}
	return s.subHeads[id]
}

// Len reports the number of headings.
func (s *Store) Len() int {
	return len(s.headings)
}

// First returns the heading that was inserted first.
func (s *Store) First() HeadingID {
	return 0
}

func (s *Store) NextHeading(id HeadingID) HeadingID {
	if !s.validHeading(id) {
		return s.First()
	}
	return HeadingID(s.headingLinks.next(int(id)))
}

func (s *Store) PrevHeading(id HeadingID) HeadingID {
	if !s.validHeading(id) {
		return s.First()
	}
	return HeadingID(s.headingLinks.prev(int(id)))
}

// NextItem returns the ring successor of ref. NoItem stays NoItem.
func (s *Store) NextItem(ref ItemRef) ItemRef {
	if !s.validItem(ref) {
		return NoItem
	}
	return ItemRef(s.itemLinks.next(int(ref)))
}

// PrevItem returns the ring predecessor of ref. NoItem stays NoItem.
func (s *Store) PrevItem(ref ItemRef) ItemRef {
	if !s.validItem(ref) {
		return NoItem
	}
	return ItemRef(s.itemLinks.prev(int(ref)))
}

// Heading returns the node for id.
func (s *Store) Heading(id HeadingID) (HeadingNode, bool) {
	if !s.validHeading(id) {
		return HeadingNode{}, false
	}
	return s.headings[id], true
}

// Item returns the node for ref.
func (s *Store) Item(ref ItemRef) (SubItemNode, bool) {
	if !s.validItem(ref) {
		return SubItemNode{}, false
	}
	return s.items[ref], true
}

// HeadingLabel is a convenience for rendering and narration.
func (s *Store) HeadingLabel(id HeadingID) string {
	node, _ := s.Heading(id)
	return node.Label
}

func (s *Store) ItemLabel(ref ItemRef) string {
	node, _ := s.Item(ref)
	return node.Label
}

// HeadingLabels lists heading labels in ring order from the first heading.
func (s *Store) HeadingLabels() []string {
	labels := make([]string, 0, len(s.headings))
	for _, idx := range s.headingLinks.walk(int(s.First())) {
		labels = append(labels, s.headings[idx].Label)
	}
	return labels
}

// SubItemLabels lists the heading's sub-item labels in ring order from the
// head. It returns nil for an empty ring.
func (s *Store) SubItemLabels(id HeadingID) []string {
	head := s.SubMenuOf(id)
	if head == NoItem {
		return nil
	}
	order := s.itemLinks.walk(int(head))
	labels := make([]string, 0, len(order))
	for _, idx := range order {
		labels = append(labels, s.items[idx].Label)
	}
	return labels
}

// ItemPosition returns the 0-based position of ref within its ring, or -1.
func (s *Store) ItemPosition(ref ItemRef) int {
	node, ok := s.Item(ref)
	if !ok {
		return -1
	}
	for pos, idx := range s.itemLinks.walk(int(s.subHeads[node.Heading])) {
		if ItemRef(idx) == ref {
			return pos
		}
	}
	return -1
}

// HeadingForHotkey finds the heading whose label starts with r, ignoring
// case. The lowest identifier wins when several headings share a letter.
func (s *Store) HeadingForHotkey(r rune) (HeadingID, bool) {
	want := unicode.ToLower(r)
	for _, heading := range s.headings {
		first := []rune(heading.Label)[0]
		if unicode.ToLower(first) == want {
			return heading.ID, true
		}
	}
	return 0, false
}

func (s *Store) validHeading(id HeadingID) bool {
	return s != nil && id >= 0 && int(id) < len(s.headings)
}

func (s *Store) validItem(ref ItemRef) bool {
	return s != nil && ref >= 0 && int(ref) < len(s.items)
}
