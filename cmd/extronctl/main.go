package main

import "github.com/avkit/extronctl/cmd/extronctl/root"

func main() {
	root.Execute()
}
