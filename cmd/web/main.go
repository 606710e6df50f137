package main

import "supermock_backend/internal/app"

func main() {
	app.Run()
}
