package pixfmt

import "math"

// Extent is the pixel size of an image. Depth counts layers or slices; it
// is never a block dimension.
type Extent struct {
	Width  int
	Height int
	Depth  int
}

// BlockCount returns how many blocks of f cover the extent horizontally
// and vertically. Partial blocks at the right and bottom edges count as
// whole blocks. Negative widths and heights count as zero.
func (f Format) BlockCount(e Extent) (across, down int) {
	_, bw, bh := f.BlockByteSize()
	return blocksCovering(e.Width, bw), blocksCovering(e.Height, bh)
}

// RowByteSize returns the bytes in one row of blocks spanning width pixels.
// For uncompressed formats this is width * bytes per pixel. The result
// saturates at math.MaxInt.
func (f Format) RowByteSize(width int) int {
	size, bw, _ := f.BlockByteSize()
	return mulSat(blocksCovering(width, bw), size)
}

// BufferByteSize returns the bytes needed to store an image of the given
// extent in f:
//
//	ceil(width/blockWidth) * ceil(height/blockHeight) * blockByteSize * max(1, depth)
//
// A depth of zero or less counts as one layer. An unsupported format
// reports a diagnostic and, with its zero block size, yields 0.
// The result saturates at math.MaxInt.
func (f Format) BufferByteSize(e Extent) int {
	size, bw, bh := f.BlockByteSize()
	blocks := mulSat(blocksCovering(e.Width, bw), blocksCovering(e.Height, bh))
	return mulSat(mulSat(blocks, size), max(1, e.Depth))
}

// blocksCovering is the ceiling of n/block, with n clamped at zero.
func blocksCovering(n, block int) int {
	if n <= 0 {
		return 0
	}
	return (n-1)/block + 1
}

// mulSat multiplies two non-negative ints, saturating at math.MaxInt.
func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
