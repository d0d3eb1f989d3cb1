package main

import (
	"context"
	"mathviews/cmd/mathviews/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
