package gallery

// DemoConfig is a built-in three-frame scene, used by hosts when no
// configuration file is given. The pictures are generated placeholders,
// so it runs without any assets on disk.
func DemoConfig() Config {
	config := Config{
		Title: "tableau gallery",
		Camera: CameraConfig{
			Position: [3]float64{0, 1.25, 1.7},
			LookAt:   [3]float64{0, 0.85, 0},
			FOV:      60,
		},
		Table: TableConfig{
			Position: [3]float64{0, 0.56, 0},
			Size:     [3]float64{1.7, 0.08, 0.8},
			Color:    "#8a6a4f",
		},
		Pictures: []PictureConfig{
			{ID: "left", Position: [3]float64{-0.55, 0.86, 0}, Rotation: [3]float64{0, 14, 0}},
			{ID: "center", Position: [3]float64{0, 0.86, -0.08}},
			{ID: "right", Position: [3]float64{0.55, 0.86, 0}, Rotation: [3]float64{0, -14, 0}},
		},
	}
	config.applyDefaults()

	return config
}
