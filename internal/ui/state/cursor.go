package state

import "github.com/atomicstack/ringmenu/internal/menu"

// Cursor identifies the highlighted heading and, when a sub-menu is open, the
// highlighted sub-item of that heading.
type Cursor struct {
	Heading menu.HeadingID
	Item    menu.ItemRef
}

// Open reports whether a sub-menu is displayed.
func (c Cursor) Open() bool {
	return c.Item != menu.NoItem
}

// moveHeading switches to id and closes the sub-menu. It reports whether the
// heading changed.
func (c *Cursor) moveHeading(id menu.HeadingID) bool {
	changed := c.Heading != id
	c.Heading = id
	c.Item = menu.NoItem
	return changed
}
