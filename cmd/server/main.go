package main

import (
	"log"

	"github.com/lk16/flippy/greedy/internal"
	"github.com/lk16/flippy/greedy/internal/config"
)

func main() {
	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
