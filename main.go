package main

import (
	"log"

	"Tasker/Config"
	"Tasker/FiberConfig"
	"Tasker/Models"
)

func main() {
	cfg := Config.Load()

	db, err := Models.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to set up database:", err)
	}

	if err := FiberConfig.Run(cfg, db); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
