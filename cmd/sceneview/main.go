package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/fvillanueva/go-sceneview/internal/glhelper"
	"github.com/fvillanueva/go-sceneview/pkg/render"
	"github.com/fvillanueva/go-sceneview/pkg/scene"
)

const (
	windowWidth  = 640
	windowHeight = 480
)

func init() {
	// The OpenGL context is bound to one OS thread; keep main on it.
	runtime.LockOSThread()
}

func main() {
	texture1Path := flag.String("texture1_filepath", "texture1.bmp", "filepath of the first texture")
	texture2Path := flag.String("texture2_filepath", "texture2.bmp", "filepath of the second texture")
	wireframe := flag.Bool("wireframe", true, "draw the models as wireframes instead of solid fill")
	flag.Parse()

	renderer, err := render.NewRenderer(windowWidth, windowHeight, "Scene Viewer")
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}
	renderer.SetWireframe(*wireframe)

	texture1, err := glhelper.LoadTexture(*texture1Path)
	if err != nil {
		log.Fatalf("Failed to load texture: %v", err)
	}
	texture2, err := glhelper.LoadTexture(*texture2Path)
	if err != nil {
		log.Fatalf("Failed to load texture: %v", err)
	}

	unit := mgl32.Vec3{1, 1, 1}
	pyramid := scene.NewModel(unit, mgl32.Vec3{-3, -1, -15}, scene.Pyramid())
	cube := scene.NewModel(unit, mgl32.Vec3{1, -1, -15}, scene.Cube())

	renderer.AddModel(pyramid, texture1)
	renderer.AddModel(cube, texture2)

	renderer.Run()
}
