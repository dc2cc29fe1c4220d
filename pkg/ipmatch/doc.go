// Package ipmatch decides whether a client IP address is admitted by an
// allowlist of exact IPs and CIDR ranges.
//
// It backs the IP restriction on admin roles: a role may carry a list like
// ["203.0.113.7", "10.0.0.0/8"] and access is granted only from matching
// origins. An empty allowlist means unrestricted.
//
//	ipmatch.Allowed("10.1.2.3", []string{"10.0.0.0/8"}) // true
//	ipmatch.Allowed("8.8.8.8", []string{"10.0.0.0/8"})  // false
//	ipmatch.Allowed(anything, nil)                      // true
//
// Candidate addresses may carry a trailing port ("192.0.2.1:443",
// "[2001:db8::1]:443"); it is stripped before matching. Malformed allowlist
// entries are skipped, so they can only ever narrow access, never widen it.
package ipmatch
