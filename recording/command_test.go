package recording

import "testing"

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{ClearCommand{}, "Clear"},
		{SetRGBACommand{}, "SetRGBA"},
		{SetBrushCommand{}, "SetBrush"},
		{ClipRectCommand{}, "ClipRect"},
		{ResetClipCommand{}, "ResetClip"},
		{SetFontFaceCommand{}, "SetFontFace"},
		{NewPathCommand{}, "NewPath"},
		{MoveToCommand{}, "MoveTo"},
		{LineToCommand{}, "LineTo"},
		{ArcCommand{}, "Arc"},
		{ClosePathCommand{}, "ClosePath"},
		{RectangleCommand{}, "Rectangle"},
		{FillCommand{}, "Fill"},
		{MaskCommand{}, "Mask"},
		{ShowTextCommand{}, "ShowText"},
	}

	for _, tt := range tests {
		if got := tt.cmd.Type().String(); got != tt.want {
			t.Errorf("%T.Type().String() = %q, want %q", tt.cmd, got, tt.want)
		}
	}

	if got := CommandType(200).String(); got != "Unknown" {
		t.Errorf("CommandType(200).String() = %q, want Unknown", got)
	}
}
