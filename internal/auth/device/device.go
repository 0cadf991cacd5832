// Package device turns User-Agent strings into coarse labels for audit events.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

const unknownDevice = "Unknown Device"

// Label returns "Browser on OS" (or "Browser on Platform" for mobile clients).
// Version numbers are dropped so the label cannot fingerprint a caller.
func Label(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return unknownDevice
	}

	ua := useragent.New(userAgent)
	browser, _ := ua.Browser()
	os := ua.OS()

	if ua.Bot() {
		return "Bot"
	}
	if ua.Mobile() {
		if platform := ua.Platform(); platform != "" {
			return label(browser, platform)
		}
	}
	if os == "" {
		os = "Unknown OS"
	}
	return label(browser, os)
}

func label(browser, where string) string {
	if browser == "" {
		browser = "Unknown Browser"
	}
	return strings.TrimSpace(browser + " on " + where)
}
