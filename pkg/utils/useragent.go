package utils

import "strings"

// DeviceTypeFrom buckets a User-Agent header into the coarse device types
// stored with anonymous quiz sessions. Nothing finer grained is kept.
func DeviceTypeFrom(userAgent string) string {
	if userAgent == "" {
		return "desktop"
	}

	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "mobile") {
		return "mobile"
	}
	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	return "desktop"
}

func BrowserTypeFrom(userAgent string) string {
	if userAgent == "" {
		return "unknown"
	}

	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "edge"):
		return "edge"
	case strings.Contains(ua, "opera"):
		return "opera"
	case strings.Contains(ua, "chrome"):
		return "chrome"
	case strings.Contains(ua, "firefox"):
		return "firefox"
	case strings.Contains(ua, "safari"):
		return "safari"
	default:
		return "unknown"
	}
}
