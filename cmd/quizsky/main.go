package main

import (
	"os"
	"runtime"

	"quizsky/internal/cli"
	"quizsky/internal/desktop"
)

func init() {
	// GLFW must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := cli.Execute(desktop.Run); err != nil {
		os.Exit(1)
	}
}
