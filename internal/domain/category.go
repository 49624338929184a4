package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCategory upper-cases a category so "Main" and "MAIN" group together
func NormalizeCategory(category string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(category))
}

// CategoryMenu groups menu items by normalized category.
// Categories keep the order in which they were first seen.
type CategoryMenu struct {
	names []string
	items map[string][]MenuItem
}

// NewCategoryMenu builds the grouping once, normalizing each item's Category field
// so every item sits under the key equal to its own category.
func NewCategoryMenu(items []MenuItem) *CategoryMenu {
	cm := &CategoryMenu{items: make(map[string][]MenuItem)}
	for _, item := range items {
		item.Category = NormalizeCategory(item.Category)
		if _, ok := cm.items[item.Category]; !ok {
			cm.names = append(cm.names, item.Category)
		}
		cm.items[item.Category] = append(cm.items[item.Category], item)
	}
	return cm
}

// Categories returns the category keys in first-seen order
func (cm *CategoryMenu) Categories() []string {
	out := make([]string, len(cm.names))
	copy(out, cm.names)
	return out
}

// Items returns the items filed under category, nil when unknown
func (cm *CategoryMenu) Items(category string) []MenuItem {
	items, ok := cm.items[category]
	if !ok {
		return nil
	}
	out := make([]MenuItem, len(items))
	copy(out, items)
	return out
}

// Len is the total number of items
func (cm *CategoryMenu) Len() int {
	n := 0
	for _, items := range cm.items {
		n += len(items)
	}
	return n
}

func (cm *CategoryMenu) IsEmpty() bool {
	return cm.Len() == 0
}
