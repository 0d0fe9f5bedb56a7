package main

import (
	"os"

	"github.com/starshell/question/internal/commands"
)

func main() {
	os.Exit(commands.Execute())
}
