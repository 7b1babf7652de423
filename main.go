package main

import "github.com/mergecov/mergecov/cmd"

func main() {
	cmd.Execute()
}
