// Package main starts the pageturn demo server.
package main

import "flag"

// main is the entrypoint for the pageturn server.
func main() {
	configPath := flag.String("config", "./data/pageturn.yaml", "Path to the YAML settings file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logFatal(err)
	}
}
