// Package orderer holds the point-and-click ordering window: its widget state,
// the handlers bound to each widget event and the modal dialogs they raise.
//
// Handlers run one at a time on the caller's goroutine, the same way a desktop
// toolkit runs callbacks on its event loop. Front ends only publish events and
// render View snapshots.
package orderer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"github.com/talkincode/fudofusion/internal/domain"
	"github.com/talkincode/fudofusion/internal/order"
	"go.uber.org/zap"
)

// Placeholder is the first, non-selectable entry of the category combo
const Placeholder = "SELECT A CATEGORY"

// Dialogs are the modal primitives the window raises
type Dialogs interface {
	Info(title, msg string)
	Error(title, msg string)
	YesNo(title, msg string) bool
}

// View is a snapshot of every widget value
type View struct {
	Categories   []string
	Category     string
	ListEntries  []string
	ListSelected int
	Description  string
	Quantity     string
	Summary      string
}

type Orderer struct {
	menu    *domain.CategoryMenu
	order   *order.Order
	dialogs Dialogs
	tickets *snowflake.Node
	bus     EventBus.Bus

	category    string
	listItems   []domain.MenuItem
	selected    int
	description string
	quantity    string
	summary     string
}

// New builds the window over menu and binds every widget event on a fresh bus
func New(menu *domain.CategoryMenu, dialogs Dialogs, ticketNode int64) (*Orderer, error) {
	node, err := snowflake.NewNode(ticketNode)
	if err != nil {
		return nil, fmt.Errorf("ticket generator: %w", err)
	}
	o := &Orderer{
		menu:     menu,
		order:    order.New(),
		dialogs:  dialogs,
		tickets:  node,
		bus:      EventBus.New(),
		category: Placeholder,
		selected: -1,
	}
	if err := o.bind(); err != nil {
		return nil, err
	}
	o.refreshSummary()
	return o, nil
}

// Bus is where front ends publish widget events
func (o *Orderer) Bus() EventBus.Bus {
	return o.bus
}

// Order exposes the order being assembled
func (o *Orderer) Order() *order.Order {
	return o.order
}

func (o *Orderer) View() View {
	entries := make([]string, len(o.listItems))
	for i, item := range o.listItems {
		entries[i] = item.ListLabel()
	}
	return View{
		Categories:   append([]string{Placeholder}, o.menu.Categories()...),
		Category:     o.category,
		ListEntries:  entries,
		ListSelected: o.selected,
		Description:  o.description,
		Quantity:     o.quantity,
		Summary:      o.summary,
	}
}

// SelectCategory fills the item list with the category's items.
// The placeholder, or a category not on the menu, empties the list.
func (o *Orderer) SelectCategory(category string) {
	o.category = category
	o.clearList()
	if category == Placeholder {
		return
	}
	o.listItems = o.menu.Items(category)
}

// SelectItem highlights list entry index and shows its description.
// Any index outside the list clears the selection.
func (o *Orderer) SelectItem(index int) {
	if index < 0 || index >= len(o.listItems) {
		o.selected = -1
		o.description = ""
		return
	}
	o.selected = index
	o.description = o.listItems[index].Description
}

// SetQuantity mirrors typing into the quantity box
func (o *Orderer) SetQuantity(text string) {
	o.quantity = text
}

func (o *Orderer) AddToOrder() {
	item, ok := o.selectedItem()
	if !ok {
		o.dialogs.Error("Selection Error", "Please select a category and/or an item.")
		return
	}
	quantity, ok := parseQuantity(o.quantity)
	if !ok {
		o.dialogs.Error("Input Error", "Please enter a valid quantity.")
		return
	}
	err := o.order.Add(item, quantity)
	switch {
	case errors.Is(err, order.ErrItemConflict):
		o.dialogs.Error("Order Error", "Another item with the same id is already in the order.")
		return
	case err != nil:
		o.dialogs.Error("Input Error", "Please enter a valid quantity.")
		return
	}
	o.refreshSummary()
	o.quantity = ""
}

func (o *Orderer) RemoveItem() {
	item, ok := o.selectedItem()
	if !ok {
		o.dialogs.Error("Selection Error", "Please select an item and enter amount to remove.")
		return
	}
	quantity, ok := parseQuantity(o.quantity)
	if !ok {
		o.dialogs.Error("Input Error", "Please enter a valid quantity.")
		return
	}
	err := o.order.Remove(item.ID, quantity)
	switch {
	case errors.Is(err, order.ErrItemNotInOrder), errors.Is(err, order.ErrInsufficientQuantity):
		o.dialogs.Error("Remove Error", "Item not found or quantity exceeds the amount in the order.")
		return
	case err != nil:
		o.dialogs.Error("Input Error", "Please enter a valid quantity.")
		return
	}
	o.refreshSummary()
	o.quantity = ""
	o.dialogs.Info("Item Removed", fmt.Sprintf("Removed %d x %s from your order.", quantity, item.Name))
}

// Checkout confirms, shows the final summary under a fresh ticket number and
// starts a new empty order. Nothing about the finished order is kept.
func (o *Orderer) Checkout() {
	if o.order.IsEmpty() {
		o.dialogs.Error("Check Out Error", "No items in the order.")
		return
	}
	if !o.dialogs.YesNo("Confirm Checkout", "Are you sure you want to checkout?") {
		return
	}
	ticket := o.tickets.Generate()
	zap.L().Info("order checked out",
		zap.String("ticket", ticket.String()),
		zap.Int("lines", o.order.Len()),
		zap.String("total", o.order.Total().StringFixed(2)),
	)
	o.dialogs.Info("Final Order #"+ticket.String(), o.order.Summary())
	o.reset()
}

func (o *Orderer) reset() {
	o.order = order.New()
	o.refreshSummary()
	o.clearList()
	o.quantity = ""
	o.category = Placeholder
}

func (o *Orderer) clearList() {
	o.listItems = nil
	o.selected = -1
	o.description = ""
}

func (o *Orderer) refreshSummary() {
	o.summary = o.order.Summary()
}

func (o *Orderer) selectedItem() (domain.MenuItem, bool) {
	if o.selected < 0 || o.selected >= len(o.listItems) {
		return domain.MenuItem{}, false
	}
	return o.listItems[o.selected], true
}

func parseQuantity(text string) (int, bool) {
	q, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || q <= 0 {
		return 0, false
	}
	return q, true
}
