package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/speedata/wiredlist/backend/node"
	"github.com/speedata/wiredlist/frontend"
)

func show(name string, l *node.List[string]) {
	if debug {
		fmt.Println(name)
		node.Debug(l)
		return
	}
	fmt.Printf("%s: %s\n", name, l)
}

func runScript(filename string) error {
	ws, err := frontend.Load(filename, listOptions()...)
	if err != nil {
		return err
	}
	if err = ws.Run(); err != nil {
		return err
	}
	for _, name := range ws.Names() {
		l, _ := ws.List(name)
		show(name, l)
	}
	return nil
}

func chop(pattern string, values []string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	l := node.FromSlice(values, listOptions()...)
	chopped, err := l.LChop(re.MatchString)
	if err != nil {
		return err
	}
	if chopped == l {
		show("chopped", l)
		show("rest", node.New[string]())
		return nil
	}
	show("chopped", chopped)
	show("rest", l)
	return nil
}

func partition(size string, values []string) error {
	n, err := strconv.Atoi(size)
	if err != nil {
		return err
	}
	parts, err := node.FromSlice(values, listOptions()...).Partition(n)
	if err != nil {
		return err
	}
	for i, p := range parts {
		show(strconv.Itoa(i), p)
	}
	return nil
}

func reverse(values []string) error {
	l := node.FromSlice(values, listOptions()...)
	l.Reverse()
	show("reversed", l)
	return nil
}

func operations() error {
	_, err := fmt.Fprintln(os.Stdout, strings.Join(frontend.Operations(), "\n"))
	return err
}
