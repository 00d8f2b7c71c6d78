package main

import "github.com/relayfetch/arch-packaging/cmd/relayfetch-pkggen/cmd"

func main() {
	cmd.Execute()
}
