// Command wtdump prints the contents of a wt5 file as an indented tree.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/rpm4/WrightTools/data"
	"github.com/rpm4/WrightTools/wt5"
)

var (
	groupColor   = color.New(color.FgCyan, color.Bold)
	axisColor    = color.New(color.FgGreen)
	channelColor = color.New(color.FgYellow)
	attrColor    = color.New(color.FgWhite, color.Faint)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: wtdump <file.wt5>")
		os.Exit(1)
	}

	filename := os.Args[1]
	d, err := wt5.Read(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wtdump: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", filename)
	if d.Source() != "" {
		fmt.Printf("source: %s\n", d.Source())
	}
	fmt.Println()

	err = data.Walk(d.Root(), func(path string, node data.Node) error {
		indent := strings.Repeat("  ", depthOf(path))
		switch n := node.(type) {
		case *data.Group:
			if path == "/" {
				groupColor.Printf("/\n")
			} else {
				groupColor.Printf("%s%s/\n", indent, n.Name())
			}
		case *data.Axis:
			axisColor.Printf("%s%s", indent, n.Name())
			fmt.Printf("  [%d] %s", n.Len(), unitOrBare(n.Units()))
			fmt.Printf("  %g to %g\n", n.Min(), n.Max())
		case *data.Channel:
			channelColor.Printf("%s%s", indent, n.Name())
			fmt.Printf("  %v %s", n.Shape(), unitOrBare(n.Units()))
			min, max := n.Min(), n.Max()
			fmt.Printf("  %g to %g", min, max)
			if n.Signed() {
				fmt.Printf("  signed")
			}
			fmt.Println()
		}
		for _, name := range node.AttrNames() {
			value, _ := node.Attr(name)
			attrColor.Printf("%s  @%s = %v\n", indent, name, value)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "wtdump: %v\n", err)
		os.Exit(1)
	}
}

func depthOf(path string) int {
	if path == "/" {
		return 0
	}
	return len(strings.Split(strings.Trim(path, "/"), "/"))
}

func unitOrBare(unit string) string {
	if unit == "" {
		return "(bare)"
	}
	return unit
}
