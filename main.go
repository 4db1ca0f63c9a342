package main

import "github.com/nahomanteneh/gitlet/cmd"

func main() {
	cmd.Execute()
}
