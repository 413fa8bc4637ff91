package menu

import "fmt"

// Definition describes one heading and its sub-items.
type Definition struct {
	Heading string
	Items   []string
}

// DefaultDefinitions returns the built-in menu layout.
func DefaultDefinitions() []Definition {
	return []Definition{
		{Heading: "File", Items: []string{"New", "Open", "Save", "Save As"}},
		{Heading: "Edit", Items: []string{"Cut", "Copy", "Paste", "Delete"}},
		{Heading: "Search", Items: []string{"Find", "Replace"}},
		{Heading: "Help", Items: []string{"About"}},
	}
}

// Build constructs a store from definitions, preserving their order.
func Build(defs []Definition) (*Store, error) {
	labels := make([]string, len(defs))
	for i, def := range defs {
		labels[i] = def.Heading
	}
	store, err := NewStore(labels)
	if err != nil {
		return nil, err
	}
	for i, def := range defs {
		for _, item := range def.Items {
			if err := store.InsertSubItem(i, item); err != nil {
				return nil, fmt.Errorf("insert %q under %q: %w", item, def.Heading, err)
			}
		}
	}
	return store, nil
}

// Default builds the store for the built-in menu.
func Default() (*Store, error) {
	return Build(DefaultDefinitions())
}
