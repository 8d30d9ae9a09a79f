package main

import (
	"github.com/opty-app/opty-search/cmd"
)

func main() {
	cmd.Execute()
}
