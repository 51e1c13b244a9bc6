package core

const (
	// TableSamples is the number of points in the coarse numeric table.
	TableSamples = 8
	// PlotSamples is the number of points (and canvas columns) in the ASCII plot.
	PlotSamples = 100
	// PlotRows is the height of the ASCII plot.
	PlotRows = 21
)

// RenderConfig defines the sampling and plotting resolutions.
type RenderConfig struct {
	TableSamples int
	PlotSamples  int
	PlotRows     int
}

// RenderOption mutates a RenderConfig.
type RenderOption func(*RenderConfig)

// DefaultRenderConfig returns the fixed resolutions used by the tool.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TableSamples: TableSamples,
		PlotSamples:  PlotSamples,
		PlotRows:     PlotRows,
	}
}

// WithTableSamples sets the table resolution.
func WithTableSamples(n int) RenderOption {
	return func(cfg *RenderConfig) {
		if n > 0 {
			cfg.TableSamples = n
		}
	}
}

// WithPlotSamples sets the plot resolution, which is also the canvas width.
func WithPlotSamples(n int) RenderOption {
	return func(cfg *RenderConfig) {
		if n > 0 {
			cfg.PlotSamples = n
		}
	}
}

// WithPlotRows sets the canvas height.
func WithPlotRows(n int) RenderOption {
	return func(cfg *RenderConfig) {
		if n > 0 {
			cfg.PlotRows = n
		}
	}
}

// ApplyRenderOptions applies zero or more options to the default config.
func ApplyRenderOptions(opts ...RenderOption) RenderConfig {
	cfg := DefaultRenderConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
