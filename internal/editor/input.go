package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/talkincode/fudofusion/internal/domain"
)

// errAborted marks a deliberate "exit" typed at a prompt
var errAborted = errors.New("input aborted")

// isSentinel reports whether the user typed the "exit" abort word
func isSentinel(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "exit")
}

// parseIndex accepts a whole number within [0, n)
func parseIndex(s string, n int) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parsePrice accepts any non-negative decimal
func parsePrice(s string) (decimal.Decimal, bool) {
	price, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || price.IsNegative() {
		return decimal.Zero, false
	}
	return price, true
}

// idTaken reports whether another entry than the one at skip already uses id
func (e *Editor) idTaken(id int64, skip int) bool {
	for i, item := range e.items {
		if i != skip && item.ID == id {
			return true
		}
	}
	return false
}

// readItem collects the fields of one menu item. Typing "exit" at any prompt
// returns errAborted; an invalid or already used id and an invalid price
// re-prompt. skip is the index being replaced, -1 when adding.
func (e *Editor) readItem(skip int) (domain.MenuItem, error) {
	var item domain.MenuItem

	for {
		answer, err := e.con.Prompt("Enter item id (or 'exit' to stop): ")
		if err != nil {
			return item, err
		}
		if isSentinel(answer) {
			return item, errAborted
		}
		id, ok := parseID(answer)
		if !ok {
			e.con.Error("Invalid item id. Please enter a whole number or 'exit'.")
			continue
		}
		if e.idTaken(id, skip) {
			e.con.Error(fmt.Sprintf("Item id %d is already on the menu.", id))
			continue
		}
		item.ID = id
		break
	}

	name, err := e.con.Prompt("\nEnter item name (or 'exit' to stop): ")
	if err != nil {
		return item, err
	}
	if isSentinel(name) {
		return item, errAborted
	}
	item.Name = name

	description, err := e.con.Prompt("Enter item description (or 'exit' to stop): ")
	if err != nil {
		return item, err
	}
	description = domain.TruncateDescription(description)
	if isSentinel(description) {
		return item, errAborted
	}
	item.Description = description

	category, err := e.con.Prompt("Enter item category (or 'exit' to stop): ")
	if err != nil {
		return item, err
	}
	if isSentinel(category) {
		return item, errAborted
	}
	item.Category = category

	for {
		answer, err := e.con.Prompt("Enter price (or 'exit' to stop): ")
		if err != nil {
			return item, err
		}
		if isSentinel(answer) {
			return item, errAborted
		}
		price, ok := parsePrice(answer)
		if ok {
			item.Price = price
			return item, nil
		}
		e.con.Error("Invalid price. Please enter a valid decimal number or 'exit'.")
	}
}
