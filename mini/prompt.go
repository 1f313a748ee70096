package mini

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Neicx/kana-dojo/color"
	"github.com/Neicx/kana-dojo/theme"
	"github.com/Neicx/kana-dojo/util"
)

// bind is a single-letter menu action.
type bind struct {
	key  string
	name string
}

func (b *bind) eq(other *bind) bool {
	return other != nil && b.key == other.key
}

func (b *bind) String() string {
	return fmt.Sprintf("%s %s", theme.Bold("["+b.key+"]"), theme.Faint(b.name))
}

var (
	quit     = &bind{"q", "quit"}
	back     = &bind{"b", "back"}
	search   = &bind{"s", "search"}
	hist     = &bind{"h", "history"}
	copyLink = &bind{"y", "copy permalink"}
	romaji   = &bind{"r", "toggle romaji"}
)

var stdin = bufio.NewReader(os.Stdin)

type input struct {
	value string
}

// getInput reads lines from stdin until one passes the validator.
func getInput(validate func(string) bool) (*input, error) {
	for {
		fmt.Print(theme.Fg(color.Purple)("> "))
		line, err := stdin.ReadString('\n')
		if err != nil {
			return nil, err
		}

		line = strings.TrimSpace(line)
		if validate(line) {
			return &input{value: line}, nil
		}

		fail("Invalid input")
	}
}

func title(s string) {
	fmt.Println(theme.Bold(theme.Fg(theme.Active().Accent)(s)))
}

func fail(s string) {
	fmt.Println(theme.Fg(color.Red)(s))
}

func progress(s string) (eraser func()) {
	return util.PrintErasable(theme.Faint(s))
}

// menu prints numbered items plus the given binds and reads a choice.
// Quit is always available. Exactly one of the returned bind and item is set.
func menu[T fmt.Stringer](items []T, binds ...*bind) (*bind, T, error) {
	var zero T

	binds = append(binds, quit)

	for i, item := range items {
		number := theme.Faint(fmt.Sprintf("[%d]", i+1))
		fmt.Printf("%s %s\n", number, theme.Truncate(truncateAt)(item.String()))
	}

	for _, b := range binds {
		fmt.Println(b)
	}

	for {
		in, err := getInput(func(s string) bool {
			return s != ""
		})
		if err != nil {
			return nil, zero, err
		}

		for _, b := range binds {
			if b.key == in.value {
				return b, zero, nil
			}
		}

		if n, err := strconv.Atoi(in.value); err == nil && 1 <= n && n <= len(items) {
			return nil, items[n-1], nil
		}

		fail("Invalid choice")
	}
}
