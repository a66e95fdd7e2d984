// Command geominfo evaluates the geom helpers from the command line.
//
// Usage:
//
//	geominfo [flags] command [arg ...]
//
// Vectors are written as comma-separated components, e.g. 0,1,0,0.
//
// Examples:
//
//	geominfo shadow 0,1,0,0 2,10,3,1
//	geominfo -deg euler 30,45,-10
//	geominfo quat 0,0.3826834,0,0.9238795
//	geominfo clamp 3,0,4 2.5
//	geominfo world2model 0,0,2 0,90,0 0,0,5
//	geominfo layout
//	geominfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
)

func main() {
	prec := flag.Int("prec", 6, "decimal places in printed values")
	deg := flag.Bool("deg", false, "read and print Euler angles in degrees instead of radians")
	list := flag.Bool("list", false, "list available commands")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: geominfo [flags] command [arg ...]\n\n")
		fmt.Fprintf(os.Stderr, "Evaluates geometry helpers: shadow matrices, Euler/quaternion\n")
		fmt.Fprintf(os.Stderr, "conversion, magnitude clamping and flat layouts.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		for _, c := range registry {
			fmt.Fprintf(os.Stderr, "  %-12s %-24s %s\n", c.name, c.args, c.help)
		}
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts := options{prec: *prec, degrees: *deg}
	if err := run(os.Stdout, args[0], args[1:], opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, c := range registry {
		names[i] = c.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}
