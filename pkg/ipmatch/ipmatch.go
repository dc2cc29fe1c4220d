package ipmatch

import (
	"net/netip"
	"strings"
)

// Normalize strips a trailing port from an address string and returns the
// canonical textual form of the IP. Handles both "192.0.2.1:8080" and the
// bracketed IPv6 form "[2001:db8::1]:8080". Returns the trimmed input
// unchanged when it cannot be parsed as an address at all.
func Normalize(ip string) string {
	s := strings.TrimSpace(ip)

	if addr, err := netip.ParseAddr(s); err == nil {
		return addr.Unmap().String()
	}
	if ap, err := netip.ParseAddrPort(s); err == nil {
		return ap.Addr().Unmap().String()
	}

	// Bare IPv4 with port is covered by ParseAddrPort above; anything else
	// is passed through so exact-match entries still have a chance.
	return s
}

// Allowed reports whether ip is admitted by the allowlist. An empty list
// means no restriction and always admits. Entries may be exact IP addresses
// or CIDR ranges in "network/prefixLength" notation; containment is checked
// bit-exactly for both IPv4 and IPv6.
//
// Malformed entries fail closed: they are skipped and can never admit an
// address. Parsing failures never panic or escape as errors.
func Allowed(ip string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}

	candidate := Normalize(ip)
	addr, parseErr := netip.ParseAddr(candidate)
	if parseErr == nil {
		addr = addr.Unmap()
	}

	for _, entry := range allowed {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		// Exact match on the raw or normalized form succeeds immediately.
		if entry == ip || entry == candidate {
			return true
		}

		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				continue
			}
			if parseErr == nil && prefix.Masked().Contains(addr) {
				return true
			}
			continue
		}

		// Entry is a single address in a non-canonical spelling
		// (e.g. "::ffff:192.0.2.1" vs "192.0.2.1").
		if entryAddr, err := netip.ParseAddr(entry); err == nil && parseErr == nil {
			if entryAddr.Unmap() == addr {
				return true
			}
		}
	}

	return false
}
