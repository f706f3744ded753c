package main

import "avihire_backend/internal/app"

func main() {
	app.Run()
}
