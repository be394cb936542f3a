package main

import "github.com/aikz/aikz-zipper/cmd/aikz-zipper/cmd"

func main() {
	cmd.Execute()
}
