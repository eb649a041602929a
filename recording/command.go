package recording

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdClear       CommandType = iota // Clear the clip region
	CmdSetRGBA                        // Set a solid source
	CmdSetBrush                       // Set a brush source
	CmdClipRect                       // Replace the clip with a rectangle
	CmdResetClip                      // Remove the clip
	CmdSetFontFace                    // Set the text face

	// Path commands
	CmdNewPath   // Discard the current path
	CmdMoveTo    // Start a subpath
	CmdLineTo    // Add a line
	CmdArc       // Add an arc
	CmdClosePath // Close the subpath
	CmdRectangle // Add a rectangle

	// Drawing commands
	CmdFill     // Fill the current path
	CmdMask     // Composite the source through a pattern
	CmdShowText // Draw text
)

var commandTypeNames = [...]string{
	CmdClear:       "Clear",
	CmdSetRGBA:     "SetRGBA",
	CmdSetBrush:    "SetBrush",
	CmdClipRect:    "ClipRect",
	CmdResetClip:   "ResetClip",
	CmdSetFontFace: "SetFontFace",
	CmdNewPath:     "NewPath",
	CmdMoveTo:      "MoveTo",
	CmdLineTo:      "LineTo",
	CmdArc:         "Arc",
	CmdClosePath:   "ClosePath",
	CmdRectangle:   "Rectangle",
	CmdFill:        "Fill",
	CmdMask:        "Mask",
	CmdShowText:    "ShowText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BrushRef is a reference to a brush in the resource pool.
type BrushRef uint32

// PatternRef is a reference to a pattern in the resource pool.
type PatternRef uint32

// FontRef is a reference to a font face in the resource pool.
type FontRef uint32

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// ClearCommand makes the clip region transparent.
type ClearCommand struct{}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// SetRGBACommand sets a solid source from straight components.
type SetRGBACommand struct {
	R, G, B, A float64
}

// Type implements Command.
func (SetRGBACommand) Type() CommandType { return CmdSetRGBA }

// SetBrushCommand sets the source to a pooled brush.
type SetBrushCommand struct {
	Brush BrushRef
}

// Type implements Command.
func (SetBrushCommand) Type() CommandType { return CmdSetBrush }

// ClipRectCommand replaces the clip with a rectangle.
type ClipRectCommand struct {
	X, Y, Width, Height float64
}

// Type implements Command.
func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// ResetClipCommand removes the clip.
type ResetClipCommand struct{}

// Type implements Command.
func (ResetClipCommand) Type() CommandType { return CmdResetClip }

// SetFontFaceCommand selects a pooled font face.
type SetFontFaceCommand struct {
	Font FontRef
}

// Type implements Command.
func (SetFontFaceCommand) Type() CommandType { return CmdSetFontFace }

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// NewPathCommand discards the current path.
type NewPathCommand struct{}

// Type implements Command.
func (NewPathCommand) Type() CommandType { return CmdNewPath }

// MoveToCommand starts a subpath.
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a line.
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// ArcCommand adds a circular arc.
type ArcCommand struct {
	XC, YC, Radius float64
	Angle1, Angle2 float64
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// RectangleCommand adds a closed rectangle.
type RectangleCommand struct {
	X, Y, Width, Height float64
}

// Type implements Command.
func (RectangleCommand) Type() CommandType { return CmdRectangle }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillCommand fills and clears the current path.
type FillCommand struct{}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// MaskCommand composites the source through a pooled pattern.
type MaskCommand struct {
	Pattern PatternRef
}

// Type implements Command.
func (MaskCommand) Type() CommandType { return CmdMask }

// ShowTextCommand draws text at a baseline origin.
type ShowTextCommand struct {
	Text string
	X, Y float64
}

// Type implements Command.
func (ShowTextCommand) Type() CommandType { return CmdShowText }
