// Package editor implements the interactive console menu editor.
//
// The editor works on an in-memory copy of the menu. Items are addressed by
// their position in the list; nothing is written back to the store until the
// user agrees to save or leaves through the exit option.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/talkincode/fudofusion/internal/console"
	"github.com/talkincode/fudofusion/internal/domain"
	"github.com/talkincode/fudofusion/internal/menustore"
	"go.uber.org/zap"
)

const (
	choiceAdd    = "1"
	choiceEdit   = "2"
	choiceDelete = "3"
	choiceExit   = "4"
)

type Editor struct {
	con   *console.Console
	store menustore.MenuStore
	items []domain.MenuItem
}

func New(con *console.Console, store menustore.MenuStore) *Editor {
	return &Editor{con: con, store: store}
}

// Load reads the menu from the store. A missing backing file starts an empty menu.
func (e *Editor) Load(ctx context.Context) error {
	items, err := e.store.Load(ctx)
	switch {
	case errors.Is(err, menustore.ErrMenuNotFound):
		zap.L().Info("no menu file yet, starting empty", zap.String("path", e.store.Path()))
		e.items = []domain.MenuItem{}
		return nil
	case err != nil:
		return err
	}
	e.items = items
	return nil
}

// Items returns a copy of the menu being edited
func (e *Editor) Items() []domain.MenuItem {
	out := make([]domain.MenuItem, len(e.items))
	copy(out, e.items)
	return out
}

// Run shows the main menu until the user picks exit, which always saves.
func (e *Editor) Run(ctx context.Context) error {
	e.con.Info("\nRestaurant Menu Editor")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.displayMenu()
		e.displayChoices()

		choice, err := e.con.Prompt("Choose Option (1-4): ")
		if err != nil {
			return err
		}

		switch choice {
		case choiceAdd:
			err = e.addItems(ctx)
		case choiceEdit:
			err = e.editItems(ctx)
		case choiceDelete:
			err = e.deleteItem(ctx)
		case choiceExit:
			if err := e.save(ctx); err != nil {
				e.con.Error(fmt.Sprintf("Could not save menu: %v", err))
				return err
			}
			return nil
		default:
			e.con.Error("Invalid Choice Select Again")
		}
		if err != nil {
			return err
		}
	}
}

func (e *Editor) displayChoices() {
	e.con.Info("\nOptions:")
	e.con.Info("1. Add Item")
	e.con.Info("2. Edit Item")
	e.con.Info("3. Delete Item")
	e.con.Info("4. Exit\n")
}

func (e *Editor) displayMenu() {
	e.con.Info("\nMenu Items")
	for i, item := range e.items {
		e.con.Infof("%d. %d, %s: %s: $%s: %s", i, item.ID, item.Name, item.Category, item.Price.String(), item.Description)
	}
}

// save writes the menu out. Once the user has asked for it the write is not
// abandoned because ctx was canceled meanwhile.
func (e *Editor) save(ctx context.Context) error {
	return e.store.Save(context.WithoutCancel(ctx), e.items)
}

// saveChanges asks before writing the menu out. A failed save is reported
// and the editor carries on with the in-memory menu.
func (e *Editor) saveChanges(ctx context.Context) error {
	ok, err := e.con.Confirm("Would you like to save changes?(y/n): ")
	if err != nil || !ok {
		return err
	}
	if err := e.save(ctx); err != nil {
		zap.L().Error("save menu failed", zap.String("path", e.store.Path()), zap.Error(err))
		e.con.Error(fmt.Sprintf("Could not save menu: %v", err))
		return nil
	}
	e.con.Warn("Changes Saved")
	return nil
}

func (e *Editor) addItems(ctx context.Context) error {
	for {
		item, err := e.readItem(-1)
		if errors.Is(err, errAborted) {
			e.con.Info("Input Aborted.")
			return nil
		}
		if err != nil {
			return err
		}
		e.items = append(e.items, item)
		zap.L().Debug("menu item added", zap.Int64("item_id", item.ID), zap.String("name", item.Name))

		more, err := e.con.Confirm("\nWould you like to keep entering menu items?(y/n): ")
		if err != nil {
			return err
		}
		if !more {
			return e.saveChanges(ctx)
		}
	}
}

func (e *Editor) editItems(ctx context.Context) error {
	if len(e.items) == 0 {
		e.con.Warn("The menu is empty, nothing to edit.")
		return nil
	}
	for {
		e.displayMenu()
		answer, err := e.con.Prompt("Which item would you like to change?: ")
		if err != nil {
			return err
		}
		if isSentinel(answer) {
			e.con.Info("Edit Aborted")
			return nil
		}
		index, ok := parseIndex(answer, len(e.items))
		if !ok {
			e.con.Error("Invalid Entry Enter Valid Index")
			continue
		}

		item, err := e.readItem(index)
		if errors.Is(err, errAborted) {
			e.con.Info("Edit Aborted")
			return nil
		}
		if err != nil {
			return err
		}
		e.items[index] = item
		zap.L().Debug("menu item replaced", zap.Int("index", index), zap.Int64("item_id", item.ID))

		more, err := e.con.Confirm("Would you like to keep editing menu items?(y/n): ")
		if err != nil {
			return err
		}
		if !more {
			return e.saveChanges(ctx)
		}
	}
}

func (e *Editor) deleteItem(ctx context.Context) error {
	for {
		e.displayMenu()
		answer, err := e.con.Prompt("\nSelect item number to delete: ")
		if err != nil {
			return err
		}
		if isSentinel(answer) {
			return nil
		}
		index, ok := parseIndex(answer, len(e.items))
		if !ok {
			e.con.Error("Enter valid item number or 'exit'.")
			continue
		}

		name := e.items[index].Name
		sure, err := e.con.Confirm(fmt.Sprintf("Are you sure you want to delete %s?(y/n): ", name))
		if err != nil {
			return err
		}
		if !sure {
			continue
		}
		e.items = append(e.items[:index], e.items[index+1:]...)
		zap.L().Debug("menu item deleted", zap.Int("index", index), zap.String("name", name))
		e.con.Warn(name + " Deleted")
		return e.saveChanges(ctx)
	}
}
