// Command junctions reads junction-box coordinates and prints the circuit
// product and the spanning-tree bottleneck product, one per line.
package main

import "github.com/katalvlaran/junctions/cmd/junctions/commands"

func main() {
	commands.Execute()
}
