//go:build linux

package tensor

import "golang.org/x/sys/unix"

// physicalMem returns the total physical RAM in bytes.
func physicalMem() uint64 {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return ^uint64(0) >> 1
	}
	return uint64(si.Totalram) * uint64(si.Unit)
}
