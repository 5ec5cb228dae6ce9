// Command dirhunt is the CLI entry point.
package main

import "github.com/markvantol/dirhunt/cmd"

func main() {
	cmd.Execute()
}
