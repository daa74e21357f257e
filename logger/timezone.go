package logger

import "strings"

// The local-time heuristic is deliberately narrow: a single fixed offset,
// no timezone database. On Linux the offset is applied only when the
// system timezone file names exactly the recognized zone; everything else,
// including a missing or unreadable file, falls back to UTC. Other
// platforms apply the fixed offset unconditionally.
const (
	timezoneFile       = "/etc/timezone"
	recognizedZone     = "America/Sao_Paulo"
	fixedOffsetSeconds = -3 * 3600
)

func offsetFromTimezoneFile(readFile func(string) ([]byte, error)) int64 {
	data, err := readFile(timezoneFile)
	if err != nil {
		return 0
	}
	if strings.TrimSpace(string(data)) == recognizedZone {
		return fixedOffsetSeconds
	}
	return 0
}
