// Package tilemap defines the host's in-memory tile map model.
//
// A Map is a grid of tiles organized into ordered layers. Cells hold
// global tile IDs; zero means empty. The model is a plain value type:
// it performs no I/O and knows nothing about file formats. File formats
// produce and consume maps through the format package.
//
// Maps and layers support deep cloning, which the read pipeline uses to
// hand callers a model with no aliasing back into script-owned state.
package tilemap
