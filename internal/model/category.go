package model

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/sortlist/internal/shared"
)

// Category is a fixed label assigned to an item when it is created.
type Category int

const (
	Food Category = iota
	Electronics
	Clothes
	Mechanics
	Toys

	categoryCount
)

// categoryNames is sized by categoryCount, so a tag without a label does not compile.
var categoryNames = [categoryCount]string{
	Food:        "Food",
	Electronics: "Electronics",
	Clothes:     "Clothes",
	Mechanics:   "Mechanics",
	Toys:        "Toys",
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool { return c >= 0 && c < categoryCount }

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// DefaultCategory is the first declared category.
func DefaultCategory() Category { return Categories()[0] }

// ParseCategory matches s against the category labels, ignoring case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(categoryNames[c], s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", shared.ErrUnknownCategory, s)
}

// Next returns the category after c, wrapping around. Negative steps go backwards.
func (c Category) Next(step int) Category {
	n := int(categoryCount)
	return Category(((int(c)+step)%n + n) % n)
}
