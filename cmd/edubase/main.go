package main

import (
	"github.com/edubase/edubase-go/internal/cli"
)

func main() {
	cli.Execute()
}
