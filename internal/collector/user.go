package collector

import "strings"

// UserName returns the login name whose passwd row carries uid in its third
// field, or "" when no row matches.
func (s *Source) UserName(uid string) string {
	if uid == "" {
		return ""
	}
	var name string
	s.scanLines(s.passwd, func(line string) bool {
		parts := strings.Split(line, ":")
		if len(parts) < 3 || parts[2] != uid {
			return true
		}
		name = parts[0]
		return false
	})
	return name
}
