package main

import "github.com/hance08/atm/cmd"

func main() {
	cmd.Execute()
}
