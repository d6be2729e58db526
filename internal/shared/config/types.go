package config

type PlannerConfig struct {
	Language   string `mapstructure:"language"`
	BreakAfter int    `mapstructure:"break_after"`
}

type FontConfig struct {
	Family string  `mapstructure:"family"`
	Size   float64 `mapstructure:"size"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}
