// Package timeouts provides centralized timeout values for handler
// operations.
//
// These are used with context.WithTimeout for database and file I/O in HTTP
// handlers. Centralizing the values keeps them consistent and easy to tune.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: simple single-document reads or writes
//   - Medium: list queries, moderate writes, multi-step reads
//   - Long: aggregations touching multiple collections, file uploads
package timeouts

import "time"

const (
	Ping   = 2 * time.Second
	Short  = 5 * time.Second
	Medium = 10 * time.Second
	Long   = 30 * time.Second
)
