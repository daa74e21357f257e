//go:build !linux

package logger

func resolveOffset() int64 {
	return fixedOffsetSeconds
}
