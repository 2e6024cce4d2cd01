// internal/app/system/limits/limits.go
package limits

// Request body size limits for various features.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxJSONBodySize is the maximum size for JSON request bodies.
	MaxJSONBodySize = 1 << 20 // 1 MB

	// MaxProfileImageSize is the maximum size for profile picture uploads.
	MaxProfileImageSize = 10 << 20 // 10 MB
)
