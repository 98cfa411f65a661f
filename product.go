// SPDX-License-Identifier: MIT
package tally

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	// Product is a named purchase at an evaluated price.
	Product struct {
		Name  string `json:"product"`
		Price int32  `json:"price"`
	}

	// Entry is a Product recorded at some time.
	Entry struct {
		ID   uuid.UUID `json:"id"`
		Time time.Time `json:"time"`
		Product
	}
)

// EntryTimeLayout is the layout used to render an Entry's time.
const EntryTimeLayout = "2006-01-02 15:04"

// ParseProduct extracts a Product from a free-text line such as "tea 75+25" or "(10+10)*3 rent".
func ParseProduct(line string) (p Product, err error) {
	price, name, err := Segment(strings.TrimSpace(line))
	if err != nil {
		return
	}

	value, err := Evaluate(price)
	if err != nil {
		return
	}

	return Product{Name: strings.TrimSpace(name), Price: value}, nil
}

// String is the fmt.Stringer interface implementation for Product.
func (p Product) String() string { return fmt.Sprintf("%s %d", p.Name, p.Price) }

// NewEntry records a Product with a generated identifier at the current local time.
func NewEntry(p Product) Entry {
	return Entry{
		ID:      uuid.New(),
		Time:    time.Now(),
		Product: p,
	}
}

// String is the fmt.Stringer interface implementation for Entry.
func (e Entry) String() string {
	return fmt.Sprintf("%s, %d, %s", e.Name, e.Price, e.Time.Format(EntryTimeLayout))
}
