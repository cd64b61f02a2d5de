package main

import (
	"context"
	"fmt"
	"os"

	"github.com/w-029/DP-TemplatePattern/internal/cli"
)

func main() {
	err := cli.NewRootCmd(os.Stderr).ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
