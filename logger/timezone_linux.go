//go:build linux

package logger

import "os"

func resolveOffset() int64 {
	return offsetFromTimezoneFile(os.ReadFile)
}
