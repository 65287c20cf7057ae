package main

import "evalkit/internal/app/server"

func main() {
	server.Run()
}
