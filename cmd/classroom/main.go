package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/leterax/virtual-classroom/pkg/app"
	"github.com/leterax/virtual-classroom/pkg/input"
	"github.com/leterax/virtual-classroom/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	renderer, err := render.NewRenderer(app.DefaultConfig(), log.Default())
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	fmt.Println("Controls:")
	for _, line := range input.Help {
		fmt.Printf("  %s\n", line)
	}

	renderer.Run()
}
