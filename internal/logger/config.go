package logger

import "os"

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level      string // Log level: debug, info, warn, error
	Format     string // Format: json hoặc text
	Output     string // Output: stdout, file, both
	LogPath    string // Thư mục chứa log files
	AppFile    string // Tên file log chính
	ErrorFile  string // Tên file log lỗi
	MaxSize    int    // Kích thước tối đa mỗi file (MB)
	MaxBackups int    // Số file cũ giữ lại
	MaxAge     int    // Số ngày giữ log
	Compress   bool   // Nén file cũ
}

// DefaultConfig trả về cấu hình logging mặc định.
// Level và format có thể override qua biến môi trường LOG_LEVEL, LOG_FORMAT.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "both",
		LogPath:    "logs",
		AppFile:    "app.log",
		ErrorFile:  "error.log",
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	if output := os.Getenv("LOG_OUTPUT"); output != "" {
		cfg.Output = output
	}

	return cfg
}
