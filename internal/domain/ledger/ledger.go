// Package ledger holds the in-memory line items of the bill currently being
// built. Nothing here is persisted; committing the ledger into the sales
// store is the order service's job.
package ledger

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrEmptyName is returned when a line is added without an item name.
	ErrEmptyName = errors.New("item name is required")
	// ErrInvalidQuantity is returned when a quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrInvalidPrice is returned when a unit price is zero or negative.
	ErrInvalidPrice = errors.New("unit price must be greater than zero")
	// ErrLineNotFound is returned when no line matches the given ID.
	ErrLineNotFound = errors.New("line item not found")
	// ErrNothingSelected is returned when a removal is requested with an
	// empty selection.
	ErrNothingSelected = errors.New("no line items selected")
)

// LineItem is one entry of the uncommitted bill. Amounts are stored in
// cents. Every line carries a synthetic ID so that updates and deletions
// stay unambiguous even when the same item appears on multiple lines.
type LineItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"-"`
	LineTotal int64     `json:"-"`
}

// MarshalJSON converts cent amounts to decimals for API responses
func (li LineItem) MarshalJSON() ([]byte, error) {
	type Alias LineItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(li),
		UnitPrice: float64(li.UnitPrice) / 100,
		LineTotal: float64(li.LineTotal) / 100,
	})
}

// Ledger is an ordered, mutable sequence of line items. It is not safe for
// concurrent use; the owning service serializes access.
type Ledger struct {
	lines []LineItem
	total int64
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// AddLine appends a new line item and recomputes the running total.
// Duplicate names are legal and produce distinct lines.
func (l *Ledger) AddLine(name string, quantity int, unitPrice int64) (LineItem, error) {
	if name == "" {
		return LineItem{}, ErrEmptyName
	}
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	if unitPrice <= 0 {
		return LineItem{}, ErrInvalidPrice
	}

	line := LineItem{
		ID:        uuid.New(),
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice * int64(quantity),
	}
	l.lines = append(l.lines, line)
	l.recompute()
	return line, nil
}

// UpdateLine changes the quantity of exactly one line, identified by ID,
// and recomputes its total from the line's own unit price. All other lines
// are left untouched.
func (l *Ledger) UpdateLine(id uuid.UUID, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	for i := range l.lines {
		if l.lines[i].ID == id {
			l.lines[i].Quantity = quantity
			l.lines[i].LineTotal = l.lines[i].UnitPrice * int64(quantity)
			l.recompute()
			return l.lines[i], nil
		}
	}
	return LineItem{}, ErrLineNotFound
}

// RemoveLines deletes the lines whose IDs appear in the selection and
// returns how many were removed. IDs that match nothing are skipped, so a
// stale selection is a no-op rather than an error. An empty selection is an
// error: the operator pressed delete without picking anything.
func (l *Ledger) RemoveLines(ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, ErrNothingSelected
	}

	selected := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	kept := l.lines[:0]
	removed := 0
	for _, line := range l.lines {
		if _, ok := selected[line.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, line)
	}
	l.lines = kept
	l.recompute()
	return removed, nil
}

// Clear drops all lines, e.g. when a new bill is started.
func (l *Ledger) Clear() {
	l.lines = nil
	l.recompute()
}

// Lines returns a copy of the current line items in insertion order.
func (l *Ledger) Lines() []LineItem {
	out := make([]LineItem, len(l.lines))
	copy(out, l.lines)
	return out
}

// Total returns the running bill total in cents. The invariant
// total == sum(line.LineTotal) holds after every mutation.
func (l *Ledger) Total() int64 {
	return l.total
}

// Len returns the number of line items.
func (l *Ledger) Len() int {
	return len(l.lines)
}

// recompute re-derives the total from the sequence. Called after every
// mutation, never deferred.
func (l *Ledger) recompute() {
	var total int64
	for _, line := range l.lines {
		total += line.LineTotal
	}
	l.total = total
}
