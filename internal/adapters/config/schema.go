package config

// Glimpsefile represents the structure of the glimpse.yaml configuration file.
type Glimpsefile struct {
	Version      string      `yaml:"version"`
	Root         string      `yaml:"root"`
	GraphicsPath []string    `yaml:"graphicsPath"`
	Preview      *PreviewDTO `yaml:"preview"`
}

// PreviewDTO represents the preview size settings in the configuration.
type PreviewDTO struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}
