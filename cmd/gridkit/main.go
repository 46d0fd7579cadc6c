// Command gridkit solves grid puzzles from the command line.
package main

import "github.com/PanoramicPanda/gridkit/cmd"

func main() {
	cmd.Execute()
}
