package main

import (
	"flag"
	"runtime"

	stilllife "github.com/stilllife3d/stilllife"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "stilllife.yaml", "Path to the YAML config file")
	flag.Parse()

	stilllife.NewApp().
		UseModules(
			stilllife.ConfigModule{Path: *configPath},
			stilllife.LoggingModule{},
			stilllife.TimeModule{},
			stilllife.PlatformWindowModule{},
			stilllife.RendererModule{},
			stilllife.SceneModule{},
		).
		Run()
}
