package orderer

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/talkincode/fudofusion/internal/console"
	"github.com/talkincode/fudofusion/internal/domain"
)

const shellHelp = `Commands:
  c <n|NAME>  choose category (0 = SELECT A CATEGORY)
  i <n>       highlight item n (0 clears)
  q <text>    type into the quantity box
  a           Add to Order
  r           Remove Item
  x           Check Out
  h           this help
  quit        close the window`

// ConsoleDialogs shows modal dialogs as blocking console prompts
type ConsoleDialogs struct {
	con *console.Console
}

func NewConsoleDialogs(con *console.Console) *ConsoleDialogs {
	return &ConsoleDialogs{con: con}
}

func (d *ConsoleDialogs) Info(title, msg string) {
	d.con.Title("[" + title + "]")
	d.con.Info(msg)
}

func (d *ConsoleDialogs) Error(title, msg string) {
	d.con.Error("[" + title + "] " + msg)
}

// YesNo treats a closed input as "no"
func (d *ConsoleDialogs) YesNo(title, msg string) bool {
	ok, err := d.con.Confirm("[" + title + "] " + msg + " (y/n): ")
	return err == nil && ok
}

// Shell drives an Orderer from typed commands, redrawing the window after each one
type Shell struct {
	con *console.Console
	o   *Orderer
}

func NewShell(con *console.Console, o *Orderer) *Shell {
	return &Shell{con: con, o: o}
}

// Run blocks until "quit" or the input closes
func (s *Shell) Run(ctx context.Context) error {
	bus := s.o.Bus()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		Render(s.con.Writer(), s.o.View())

		input, err := s.con.Prompt("> ")
		if err != nil {
			if errors.Is(err, console.ErrInputClosed) {
				return nil
			}
			return err
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(input), " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(cmd) {
		case "":
		case "c":
			category, ok := s.resolveCategory(arg)
			if !ok {
				s.con.Error("Unknown category: " + arg)
				continue
			}
			bus.Publish(TopicCategory, category)
		case "i":
			n, err := strconv.Atoi(arg)
			if err != nil {
				s.con.Error("Item number expected")
				continue
			}
			bus.Publish(TopicItem, n-1)
		case "q":
			bus.Publish(TopicQuantity, arg)
		case "a":
			bus.Publish(TopicAdd)
		case "r":
			bus.Publish(TopicRemove)
		case "x":
			bus.Publish(TopicCheckout)
		case "h", "help":
			s.con.Info(shellHelp)
		case "quit":
			return nil
		default:
			s.con.Error("Unknown command, type h for help")
		}
	}
}

// resolveCategory accepts a combo position or a category name
func (s *Shell) resolveCategory(arg string) (string, bool) {
	options := s.o.View().Categories
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 0 || n >= len(options) {
			return "", false
		}
		return options[n], true
	}
	name := domain.NormalizeCategory(arg)
	for _, option := range options {
		if option == name {
			return option, true
		}
	}
	return "", false
}
