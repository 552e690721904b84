package main

import "github.com/inovacc/ghdl/cmd"

func main() {
	cmd.Execute()
}
