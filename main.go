package main

import (
	"github.com/aosadchuk/library-catalog/internal/config"
	"github.com/aosadchuk/library-catalog/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
