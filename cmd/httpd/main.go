package main

import (
	"fmt"
	"os"

	"github.com/dataplatform-hub/search/internal/bootstrap"
)

func main() {
	if err := bootstrap.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start search service: %v\n", err)
		os.Exit(1)
	}
}
