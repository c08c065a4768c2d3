package main

import "github.com/dmitrijs2005/accountregistry/internal/client/cli"

func main() {
	cli.Execute()
}
