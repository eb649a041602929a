package decor

import (
	"strconv"
	"strings"
)

// FrameFlags describe the state of the window a frame is drawn for.
type FrameFlags uint32

const (
	// FrameActive draws the focused variant of the frame.
	FrameActive FrameFlags = 1 << iota
	// FrameMaximized drops the shadow and the outer margin.
	FrameMaximized
	// FrameNoTitle marks a window without a titlebar. It affects hit
	// testing; rendering follows the title string.
	FrameNoTitle
)

var frameFlagNames = []struct {
	flag FrameFlags
	name string
}{
	{FrameActive, "Active"},
	{FrameMaximized, "Maximized"},
	{FrameNoTitle, "NoTitle"},
}

// String returns the set flags joined by "|", or "0".
func (f FrameFlags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for _, n := range frameFlagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
			f &^= n.flag
		}
	}
	if f != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(f), 16))
	}
	return strings.Join(parts, "|")
}
