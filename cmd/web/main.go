package main

import "github.com/kiri-yossy/bezihuri/internal/app"

func main() {
	app.Run()
}
