package config

// File represents the structure of a crashplot YAML configuration file.
// Zero values leave the corresponding default untouched.
type File struct {
	// Output overrides the chart path.
	Output string `yaml:"output,omitempty"`

	// Renderer selects the chart backend.
	Renderer string `yaml:"renderer,omitempty"`

	// Chart holds appearance settings.
	Chart ChartFile `yaml:"chart,omitempty"`
}

// ChartFile holds the chart appearance section of the config file.
type ChartFile struct {
	Title        string  `yaml:"title,omitempty"`
	YLabel       string  `yaml:"y_label,omitempty"`
	DPI          float64 `yaml:"dpi,omitempty"`
	WidthInches  float64 `yaml:"width_inches,omitempty"`
	HeightInches float64 `yaml:"height_inches,omitempty"`
}

// Apply copies every non-zero setting of the file into cfg.
func (cf *File) Apply(cfg *Config) {
	if cf == nil {
		return
	}
	if cf.Output != "" {
		cfg.OutputPath = cf.Output
	}
	if cf.Renderer != "" {
		cfg.Renderer = cf.Renderer
	}
	if cf.Chart.Title != "" {
		cfg.Title = cf.Chart.Title
	}
	if cf.Chart.YLabel != "" {
		cfg.YLabel = cf.Chart.YLabel
	}
	if cf.Chart.DPI != 0 {
		cfg.DPI = cf.Chart.DPI
	}
	if cf.Chart.WidthInches != 0 {
		cfg.WidthInches = cf.Chart.WidthInches
	}
	if cf.Chart.HeightInches != 0 {
		cfg.HeightInches = cf.Chart.HeightInches
	}
}
