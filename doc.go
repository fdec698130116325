// Package pixfmt is a registry of the pixel-data formats used by an image
// I/O layer.
//
// # Overview
//
// A [Format] names one concrete pixel layout: a scalar kind (unsigned or
// signed normalized byte, half, float, double, 16- or 32-bit integer), a
// channel count from 1 to 4, and optionally an sRGB encoding or a BC block
// compression. The registry answers, for every format:
//
//   - [Format.ScalarKind]: the storage type of one component
//   - [Format.ComponentCount]: the number of channels
//   - [Format.ElementByteSize]: the byte size of one component's scalar
//   - [Format.BlockByteSize]: the byte size and pixel size of one block
//   - [Format.IsCompressed]: whether the format is block-compressed
//   - [Format.BufferByteSize]: the total bytes for an [Extent]
//
// # Block compression
//
// BC6 and BC7 formats store 16 bytes per 4x4 tile of pixels. Buffer sizes
// round each axis up to whole blocks, so a 5x5 BC7 image needs 2x2 blocks:
//
//	pixfmt.FormatBC7UNorm8Vec4.BufferByteSize(pixfmt.Extent{Width: 5, Height: 5, Depth: 1}) // 64
//
// Uncompressed formats have 1x1 blocks, and a block is a pixel.
//
// # Unsupported formats
//
// [FormatInvalid], [FormatCount] and out of range values are not
// classifiable. The queries log a warning on the logger configured with
// [SetLogger] and return a documented default; none of them panic.
// [Format.Describe] is the checked variant and returns an error wrapping
// [ErrUnsupportedFormat]. [Format.IsCompressed] never reports.
//
// # GPU interop
//
// [Format.TextureFormat], [FormatFromTexture] and
// [Format.TextureDataLayout] bridge to github.com/gogpu/gputypes for upload
// layers.
//
// All functions are safe for concurrent use.
package pixfmt
