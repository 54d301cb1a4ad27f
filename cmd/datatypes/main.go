package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/opcua-runtime/sys"
)

func main() {
	var (
		typeName    = flag.String("type", "", "Show a single data type by name")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*typeName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(typeName string) error {
	if typeName != "" {
		for i := range sys.Types {
			dt := &sys.Types[i]
			if strings.EqualFold(dt.Name, typeName) {
				printType(sys.TypeIndex(i), dt)
				return nil
			}
		}
		return fmt.Errorf("unknown data type %q", typeName)
	}

	fmt.Printf("Data types: %d\n\n", sys.TypeCount)
	fmt.Printf("  %-6s %-12s %-10s %-5s %-6s %s\n", "Index", "Name", "Node ID", "Size", "Align", "Pointer-free")
	for i := range sys.Types {
		dt := &sys.Types[i]
		fmt.Printf("  %-6d %-12s ns=0;i=%-3d %-5d %-6d %v\n",
			i, dt.Name, dt.NodeID, dt.MemSize, dt.Align, dt.PointerFree)
	}
	return nil
}

func printType(idx sys.TypeIndex, dt *sys.DataType) {
	fmt.Printf("Data type: %s\n", dt.Name)
	fmt.Printf("Type index: %d\n", idx)
	fmt.Printf("Node ID: ns=0;i=%d\n", dt.NodeID)
	fmt.Printf("Memory size: %d bytes\n", dt.MemSize)
	fmt.Printf("Alignment: %d bytes\n", dt.Align)
	fmt.Printf("Pointer-free: %v\n", dt.PointerFree)
}
