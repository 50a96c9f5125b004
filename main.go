package main

import "github.com/ielis/kg-covid-19/cmd"

func main() {
	cmd.Execute()
}
