package config

// LoaderConfig defines how input documents are read
type LoaderConfig struct {
	MaxFileSizeMB int `json:"max_file_size_mb,omitempty" yaml:"max_file_size_mb,omitempty" validate:"min=0"`
	// Strict aborts the load when a single page fails to extract instead of
	// treating that page as empty.
	Strict bool `json:"strict" yaml:"strict"`
}

// NewDefaultLoaderConfig creates default loader configuration
func NewDefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		MaxFileSizeMB: DefaultLoaderMaxFileSizeMB,
		Strict:        false,
	}
}

// MaxFileSizeBytes returns the size limit in bytes, 0 meaning unlimited
func (lc LoaderConfig) MaxFileSizeBytes() int64 {
	return int64(lc.MaxFileSizeMB) * 1024 * 1024
}
