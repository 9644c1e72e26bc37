package collector

import "strings"

// OSPrettyName returns PRETTY_NAME from the os-release record with quotes
// stripped and underscores shown as spaces, or "" if the key is absent.
func (s *Source) OSPrettyName() string {
	var name string
	s.scanLines(s.osRelease, func(line string) bool {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok || strings.TrimSpace(key) != "PRETTY_NAME" {
			return true
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		name = strings.ReplaceAll(value, "_", " ")
		return false
	})
	return name
}

// KernelVersion returns the third token of the version record
// ("Linux version 6.1.0-13-amd64 ...").
func (s *Source) KernelVersion() string {
	fields := strings.Fields(s.firstLine(s.procPath("version")))
	if len(fields) < 3 {
		return ""
	}
	return fields[2]
}
