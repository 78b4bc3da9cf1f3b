package util

import (
	"net"
	"strings"
)

// AnonymizeIP truncates an address before it is ever stored: IPv4 keeps the
// /24 network (last octet zeroed), IPv6 keeps the /48 prefix (trailing 80
// bits zeroed). Anything unparsable becomes the empty string.
func AnonymizeIP(raw string) string {
	ip := net.ParseIP(strings.TrimSpace(raw))
	if ip == nil {
		return ""
	}

	if v4 := ip.To4(); v4 != nil {
		masked := make(net.IP, len(v4))
		copy(masked, v4)
		masked[3] = 0
		return masked.String()
	}

	v6 := ip.To16()
	if v6 == nil {
		return ""
	}
	masked := make(net.IP, len(v6))
	copy(masked, v6)
	for i := 6; i < 16; i++ {
		masked[i] = 0
	}
	return masked.String()
}
