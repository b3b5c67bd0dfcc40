package graph

// Format is a GPU image pixel format. The set mirrors the closed
// enumeration a native graphics API exposes; the compiler only needs to
// know which of them are depth formats, never how to bind them.
type Format int

const (
	FormatUnknown Format = iota

	// Color formats.
	FormatR8G8Unorm
	FormatR8G8B8A8Unorm
	FormatR32Uint

	// Depth / depth-stencil formats.
	FormatD16Unorm
	FormatD16Unorm_S8Uint
	FormatD24Unorm_S8Uint
	FormatD32Sfloat
	FormatD32Sfloat_S8Uint
)

var formatNames = map[Format]string{
	FormatUnknown:         "Unknown",
	FormatR8G8Unorm:       "R8G8Unorm",
	FormatR8G8B8A8Unorm:   "R8G8B8A8Unorm",
	FormatR32Uint:         "R32Uint",
	FormatD16Unorm:        "D16Unorm",
	FormatD16Unorm_S8Uint: "D16Unorm_S8Uint",
	FormatD24Unorm_S8Uint: "D24Unorm_S8Uint",
	FormatD32Sfloat:       "D32Sfloat",
	FormatD32Sfloat_S8Uint: "D32Sfloat_S8Uint",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "Format(?)"
}

// depthFormats is the closed set of formats valid for a depth/stencil
// attachment slot. Extending the format enumeration (spec §6) means
// updating this set in lockstep.
var depthFormats = map[Format]bool{
	FormatD16Unorm:         true,
	FormatD16Unorm_S8Uint:  true,
	FormatD24Unorm_S8Uint:  true,
	FormatD32Sfloat:        true,
	FormatD32Sfloat_S8Uint: true,
}

// IsDepthFormat reports whether f may be used in a depth/stencil slot.
func (f Format) IsDepthFormat() bool {
	return depthFormats[f]
}

// DefaultDepthFormat is the format used by AddDepthAttachment.
const DefaultDepthFormat = FormatD24Unorm_S8Uint
