package main

import (
	"github.com/diafit-org/summaries/cmd/summaries/command"
)

func main() {
	command.Execute()
}
