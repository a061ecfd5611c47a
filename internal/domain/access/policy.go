package access

import "strings"

// Admin authorization is an allow-list supplied through configuration, not a
// role stored on any record. Emails match exactly: no trimming of the probed
// value, no case folding, so "Admin@x.com" and "admin@x.com" are different
// identities.

var admins = map[string]struct{}{}

// Load replaces the allow-list from a comma-separated string. Entries are
// trimmed (config hygiene) but otherwise kept verbatim.
func Load(raw string) {
	next := map[string]struct{}{}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		next[entry] = struct{}{}
	}
	admins = next
}

func IsAdmin(email string) bool {
	_, ok := admins[email]
	return ok
}
