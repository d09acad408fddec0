package main

import "github.com/alexiusacademia/goseismic/cmd"

func main() {
	cmd.Execute()
}
