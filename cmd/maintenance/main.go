package main

import (
	"os"

	"github.com/saulo-duarte/personal-lambda/internal/config"
)

func main() {
	a := &app{open: openContainer, close: config.Disconnect}
	if err := a.execute(os.Args[1:], os.Stdout); err != nil {
		config.Logger.WithError(err).Error("Maintenance command failed")
		os.Exit(1)
	}
}
