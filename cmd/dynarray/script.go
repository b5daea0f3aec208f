/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package main

import (
	"fmt"
	"github.com/emirpasic/gods/containers"
	"github.com/gorundebug/dynarray/collection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"io"
	"strconv"
	"strings"
)

var commandCaser = cases.Lower(language.English)

type command struct {
	args int
	run  func(c *collection.Collection[string], args []string, out io.Writer) error
}

var commands = map[string]command{
	"add": {args: 1, run: func(c *collection.Collection[string], args []string, out io.Writer) error {
		c.Add(args[0])
		return nil
	}},
	"addrange": {args: 1, run: func(c *collection.Collection[string], args []string, out io.Writer) error {
		c.AddRange(splitItems(args[0])...)
		return nil
	}},
	"insert": {args: 2, run: func(c *collection.Collection[string], args []string, out io.Writer) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return c.InsertAt(index, args[1])
	}},
	"remove": {args: 1, run: func(c *collection.Collection[string], args []string, out io.Writer) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return c.RemoveAt(index)
	}},
	"set": {args: 2, run: func(c *collection.Collection[string], args []string, out io.Writer) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return c.Set(index, args[1])
	}},
	"get": {args: 1, run: func(c *collection.Collection[string], args []string, out io.Writer) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		value, err := c.Get(index)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, value)
		return err
	}},
	"exchange": {args: 2, run: func(c *collection.Collection[string], args []string, out io.Writer) error {
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		j, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		return c.Exchange(i, j)
	}},
	"clear": {run: func(c *collection.Collection[string], args []string, out io.Writer) error {
		c.Clear()
		return nil
	}},
	"count": {run: func(c *collection.Collection[string], args []string, out io.Writer) error {
		return describe(c, "count", out)
	}},
	"empty": {run: func(c *collection.Collection[string], args []string, out io.Writer) error {
		return describe(c, "empty", out)
	}},
	"capacity": {run: func(c *collection.Collection[string], args []string, out io.Writer) error {
		_, err := fmt.Fprintln(out, c.Capacity())
		return err
	}},
	"print": {run: func(c *collection.Collection[string], args []string, out io.Writer) error {
		return describe(c, "print", out)
	}},
}

// describe prints a container level property of c.
func describe(c containers.Container, property string, out io.Writer) error {
	var value interface{}
	switch property {
	case "count":
		value = c.Size()
	case "empty":
		value = c.Empty()
	default:
		value = c.String()
	}
	_, err := fmt.Fprintln(out, value)
	return err
}

// splitItems splits a comma separated list. An empty list yields no items.
func splitItems(list string) []string {
	if list == "" {
		return nil
	}
	return strings.Split(list, ",")
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", arg, err)
	}
	return index, nil
}

// runScript applies the commands in script to c in order and stops at the
// first failing command.
func runScript(c *collection.Collection[string], script []string, out io.Writer) error {
	for pos := 0; pos < len(script); {
		name := commandCaser.String(script[pos])
		cmd, ok := commands[name]
		if !ok {
			return fmt.Errorf("unknown command %q", script[pos])
		}
		pos++
		if pos+cmd.args > len(script) {
			return fmt.Errorf("%s: expected %d argument(s), got %d", name, cmd.args, len(script)-pos)
		}
		if err := cmd.run(c, script[pos:pos+cmd.args], out); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		pos += cmd.args
	}
	return nil
}
