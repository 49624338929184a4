package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/talkincode/fudofusion/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrItemNotInOrder       = errors.New("item not in order")
	ErrInsufficientQuantity = errors.New("quantity exceeds the amount in the order")
	ErrItemConflict         = errors.New("another item with the same id is already in the order")
)

// Line is one menu item and how many of it were ordered
type Line struct {
	Item     domain.MenuItem
	Quantity int
}

// Subtotal is price * quantity for the line
func (l Line) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order accumulates quantities per menu item, keyed by item id, and keeps
// a running total. Lines stay in the order they were first added.
type Order struct {
	lines []Line
	total decimal.Decimal
}

func New() *Order {
	return &Order{total: decimal.Zero}
}

func (o *Order) find(id int64) int {
	for i := range o.lines {
		if o.lines[i].Item.ID == id {
			return i
		}
	}
	return -1
}

// Add puts quantity more of item on the order. An item whose id is already
// held by a different name or price is rejected so the line and the total
// never disagree.
func (o *Order) Add(item domain.MenuItem, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if i := o.find(item.ID); i >= 0 {
		held := o.lines[i]
		if held.Item.Name != item.Name || !held.Item.Price.Equal(item.Price) {
			return fmt.Errorf("%w: id %d is %s", ErrItemConflict, item.ID, held.Item)
		}
		if quantity > math.MaxInt-held.Quantity {
			return ErrInvalidQuantity
		}
		o.lines[i].Quantity += quantity
	} else {
		o.lines = append(o.lines, Line{Item: item, Quantity: quantity})
	}
	o.total = o.total.Add(item.Price.Mul(decimal.NewFromInt(int64(quantity))))

	zap.L().Debug("order item added",
		zap.Stringer("item", item),
		zap.Int("quantity", quantity),
		zap.String("total", o.total.StringFixed(2)),
	)
	return nil
}

// Remove takes quantity of the item off the order. A request for an item that
// is not on the order, or for more than is held, is rejected and changes nothing.
func (o *Order) Remove(itemID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i := o.find(itemID)
	if i < 0 {
		return ErrItemNotInOrder
	}
	line := o.lines[i]
	if quantity > line.Quantity {
		return fmt.Errorf("%w: holding %d, asked %d", ErrInsufficientQuantity, line.Quantity, quantity)
	}

	line.Quantity -= quantity
	if line.Quantity <= 0 {
		o.lines = append(o.lines[:i], o.lines[i+1:]...)
	} else {
		o.lines[i] = line
	}
	o.total = o.total.Sub(line.Item.Price.Mul(decimal.NewFromInt(int64(quantity))))
	if o.total.IsNegative() {
		o.total = decimal.Zero
	}

	zap.L().Debug("order item removed",
		zap.Stringer("item", line.Item),
		zap.Int("quantity", quantity),
		zap.String("total", o.total.StringFixed(2)),
	)
	return nil
}

// Quantity reports how many of the item are held, 0 when absent
func (o *Order) Quantity(itemID int64) int {
	if i := o.find(itemID); i >= 0 {
		return o.lines[i].Quantity
	}
	return 0
}

// Lines returns a copy of the order lines in insertion order
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) Len() int {
	return len(o.lines)
}

func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// Summary renders one "name x qty - $subtotal" line per entry and the total
func (o *Order) Summary() string {
	var sb strings.Builder
	sb.WriteString("\nOrder Summary:\n")
	for _, line := range o.lines {
		fmt.Fprintf(&sb, "%s x %d - $%s\n", line.Item.Name, line.Quantity, line.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(&sb, "\nTotal: $%s", o.total.StringFixed(2))
	return sb.String()
}
