package scanraster

// RendererOption configures a Renderer during construction.
//
// Example:
//
//	r := scanraster.NewRenderer(800, 600)
//
//	r := scanraster.NewRenderer(800, 600, scanraster.WithImage(myImage))
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	img            *Image
	blenderFactory BlenderFactory
}

func defaultOptions() rendererOptions {
	return rendererOptions{}
}

// BlenderFactory constructs the Blender a Fill call composites
// through, given the render target and the solid source color for
// that fill.
type BlenderFactory func(img *Image, src RGBA) Blender

// WithImage supplies the render target a Renderer composites into.
// If omitted, NewRenderer allocates a transparent Image sized to the
// Renderer's width and height.
func WithImage(img *Image) RendererOption {
	return func(o *rendererOptions) {
		o.img = img
	}
}

// WithBlenderFactory overrides the reference BGRA8888 blender with a
// caller-supplied one, e.g. for a different pixel format or for
// instrumenting fills in tests.
func WithBlenderFactory(f BlenderFactory) RendererOption {
	return func(o *rendererOptions) {
		o.blenderFactory = f
	}
}
