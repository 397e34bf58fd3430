package types

// Quality selects a PDF output preset.
type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "medium"
	QualityHigh   Quality = "high"
)

// Valid reports whether q is one of the known presets.
func (q Quality) Valid() bool {
	switch q {
	case QualityLow, QualityMedium, QualityHigh:
		return true
	}
	return false
}

// ConvertConfig holds settings for single-file conversion.
type ConvertConfig struct {
	// Quality selects the PDF preset: low, medium, or high (default high).
	Quality Quality `json:"quality" yaml:"quality"`

	// Overwrite controls whether an existing PDF at the output path is
	// replaced. When false the file is skipped.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`
}

// PoolConfig holds settings for the batch worker pool.
type PoolConfig struct {
	// Workers is the number of concurrent conversions (default 4).
	Workers int `json:"workers" yaml:"workers"`

	// OutputDir is the directory batch conversions write PDFs into.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// ValidateConfig holds settings for input validation.
type ValidateConfig struct {
	// MaxFileSize is the per-file size cap in bytes (default 100 MiB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// Extensions lists the supported source extensions (default .doc, .docx).
	Extensions []string `json:"extensions" yaml:"extensions"`

	// MaxBatchSize caps the number of files accepted in one batch
	// (default 1000).
	MaxBatchSize int `json:"max_batch_size" yaml:"max_batch_size"`
}

// HistoryConfig holds settings for the run history store.
type HistoryConfig struct {
	// Dir is the directory holding the history database.
	Dir string `json:"dir" yaml:"dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the log level: debug, info, warn, or error (default info).
	Level string `json:"level" yaml:"level"`

	// File is an optional log file path; empty logs to stderr only.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// AppConfig groups all stage configurations.
type AppConfig struct {
	Convert  ConvertConfig  `json:"convert" yaml:"convert"`
	Pool     PoolConfig     `json:"pool" yaml:"pool"`
	Validate ValidateConfig `json:"validate" yaml:"validate"`
	History  HistoryConfig  `json:"history" yaml:"history"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// Default limits applied when configuration leaves them unset.
const (
	DefaultWorkers      = 4
	DefaultMaxFileSize  = 100 << 20
	DefaultMaxBatchSize = 1000
)

// DefaultExtensions returns the source extensions handled out of the box.
func DefaultExtensions() []string {
	return []string{".doc", ".docx"}
}
