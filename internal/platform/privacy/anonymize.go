// Package privacy masks personal identifiers before they reach logs, audit
// events or trace attributes.
package privacy

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
)

// hashedIdentifierLength is the number of hex characters kept from the digest.
const hashedIdentifierLength = 16

// AnonymizeIP zeroes the host part of an address: IPv4 keeps the /24, IPv6 the /48.
// Returns "unknown" for empty input and "invalid" when the value does not parse.
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "invalid"
	}

	if v4 := parsed.To4(); v4 != nil {
		return fmt.Sprintf("%d.%d.%d.0", v4[0], v4[1], v4[2])
	}

	return fmt.Sprintf("%02x%02x:%02x%02x:%02x%02x::",
		parsed[0], parsed[1],
		parsed[2], parsed[3],
		parsed[4], parsed[5])
}

// RemoteIP strips the port from an http.Request RemoteAddr value.
func RemoteIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

// HashIdentifier returns a short stable digest of a phone number or certificate
// number. Equal inputs hash equally so events can still be correlated.
func HashIdentifier(id string) string {
	if id == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])[:hashedIdentifierLength]
}
