// Package useragent provides best-effort, display-only classification of
// User-Agent strings into coarse device and browser families.
//
// The heuristics are deliberately simple substring tests. They are good
// enough to label a session as "Mobile / Chrome" in an account's device
// list and nothing more; User-Agent values are client-controlled and must
// never feed an authorization decision.
package useragent
