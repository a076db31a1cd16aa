package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Statistics  StatisticsConfig  `mapstructure:"statistics" validate:"required"`
	Summary     SummaryConfig     `mapstructure:"summary" validate:"required"`
	Search      SearchConfig      `mapstructure:"search" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// StatisticsConfig identifies this deployment and the export drop location.
type StatisticsConfig struct {
	ViewerName string `mapstructure:"viewer_name" validate:"required"`
	ExportDir  string `mapstructure:"export_dir" validate:"required"`
}

// SummaryConfig holds reporting configuration.
type SummaryConfig struct {
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" validate:"required,min=1"`
}

// SearchConfig holds the search/index collaborator endpoint configuration.
type SearchConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,min=1"`
}
