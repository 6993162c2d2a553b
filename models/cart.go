package models

import "github.com/google/uuid"

// CartLine is one entry in the shopping cart. Name and Price are snapshots of
// the menu item at the time it was added. Note holds a free-text customization
// ("sin cebolla") and is part of the line's identity: the same dish with a
// different note is a separate line.
type CartLine struct {
	LineID   string `json:"line_id"`
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// Subtotal is unit price times quantity
func (l CartLine) Subtotal() int {
	return l.Price * l.Quantity
}

// Cart holds the lines of one shopping session in insertion order.
// All operations are pure in-memory mutations; persistence is the caller's job.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Total sums unit price × quantity over all lines
func (c *Cart) Total() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount sums quantities, not the number of distinct lines
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// AddItem merges into an existing line when both the item id and the note
// match exactly, otherwise appends a new line. Non-positive quantities are
// ignored.
func (c *Cart) AddItem(item MenuItem, quantity int, note string) {
	if quantity <= 0 {
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ID && c.Lines[i].Note == note {
			c.Lines[i].Quantity += quantity
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		LineID:   uuid.NewString(),
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: quantity,
		Note:     note,
	})
}

// RemoveItem removes every line for the given item id, regardless of note.
// A request targeting "empanada" drops both the plain and the "sin cebolla"
// variant. Use RemoveLine to drop a single variant.
func (c *Cart) RemoveItem(itemID string) {
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ItemID != itemID {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
}

// UpdateQuantity sets the quantity of the first line (in insertion order)
// matching the item id. A quantity of zero or less removes the item entirely,
// same as RemoveItem.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveLine removes exactly one line by its line id
func (c *Cart) RemoveLine(lineID string) {
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.LineID != lineID {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
}

// UpdateLine sets the quantity of exactly one line by its line id.
// Zero or less removes that line only.
func (c *Cart) UpdateLine(lineID string, quantity int) {
	if quantity <= 0 {
		c.RemoveLine(lineID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].LineID == lineID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Lines = nil
}
