package main

import (
	"github.com/mblais/connect4/core/internal/app"
	"github.com/mblais/connect4/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
