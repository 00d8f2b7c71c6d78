package main

import "github.com/relayfetch/arch-packaging/cmd/relayfetch-srcpkg/cmd"

func main() {
	cmd.Execute()
}
