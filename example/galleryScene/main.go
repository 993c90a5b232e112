package main

import (
	"flag"
	"log"

	"github.com/akmonengine/tableau/asset"
	"github.com/akmonengine/tableau/gallery"
	"github.com/akmonengine/tableau/viewer"
)

func main() {
	configPath := flag.String("config", "", "path to a gallery YAML file (built-in demo scene when empty)")
	snapshotDir := flag.String("snapshots", ".", "directory for F12 frame captures")
	workers := flag.Int("workers", 0, "render workers (0 = one per CPU)")
	flag.Parse()

	config := gallery.DemoConfig()
	if *configPath != "" {
		loaded, err := gallery.Load(*configPath)
		if err != nil {
			log.Fatalf("[Gallery] %v", err)
		}
		config = loaded
	}

	scene, err := gallery.Build(config, asset.NewCache())
	if err != nil {
		log.Fatalf("[Gallery] %v", err)
	}
	defer scene.Dispose()

	log.Printf("[Gallery] %q: %d pictures on the table", config.Title, len(config.Pictures))
	log.Print("[Gallery] hover a frame to lift it, click to bring it to you, click again to put it back")

	host := viewer.New(scene.Stage(), viewer.Options{
		Width:       config.Window.Width,
		Height:      config.Window.Height,
		Title:       config.Title,
		Workers:     *workers,
		SnapshotDir: *snapshotDir,
	})
	if err := host.Run(); err != nil {
		log.Fatalf("[Viewer] %v", err)
	}
}
