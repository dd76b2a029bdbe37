package main

import (
	"github.com/gamearena/gamearena/cmd/dev-server/internal/devwebserver"
)

// main starts a development web server that builds arena games for
// the browser and serves them, e.g.
//
//	go run ./cmd/dev-server
//
// then open http://localhost:8080/cmd/arena-demo/
func main() {
	devwebserver.Serve()
}
