package main

// Overridden at build time with -ldflags.
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	Execute()
}
