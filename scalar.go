package pixfmt

// ScalarKind is the storage type of a single component.
type ScalarKind uint8

const (
	// ScalarUnsignedByte is uint8, also used for unsigned normalized bytes.
	ScalarUnsignedByte ScalarKind = iota

	// ScalarSignedByte is int8, also used for signed normalized bytes.
	ScalarSignedByte

	// ScalarHalfFloat is an IEEE 754 binary16.
	ScalarHalfFloat

	// ScalarFloat is float32.
	ScalarFloat

	// ScalarDouble is float64.
	ScalarDouble

	// ScalarUnsignedShort is uint16.
	ScalarUnsignedShort

	// ScalarSignedShort is int16.
	ScalarSignedShort

	// ScalarUnsignedInt is uint32.
	ScalarUnsignedInt

	// ScalarInt is int32.
	ScalarInt

	// scalarCount is the number of scalar kinds (for internal use).
	scalarCount
)

var scalarByteSizes = [scalarCount]int{
	ScalarUnsignedByte:  1,
	ScalarSignedByte:    1,
	ScalarHalfFloat:     2,
	ScalarFloat:         4,
	ScalarDouble:        8,
	ScalarUnsignedShort: 2,
	ScalarSignedShort:   2,
	ScalarUnsignedInt:   4,
	ScalarInt:           4,
}

var scalarNames = [scalarCount]string{
	ScalarUnsignedByte:  "UnsignedByte",
	ScalarSignedByte:    "SignedByte",
	ScalarHalfFloat:     "HalfFloat",
	ScalarFloat:         "Float",
	ScalarDouble:        "Double",
	ScalarUnsignedShort: "UnsignedShort",
	ScalarSignedShort:   "SignedShort",
	ScalarUnsignedInt:   "UnsignedInt",
	ScalarInt:           "Int",
}

// ByteSize returns the size in bytes of one scalar of this kind, or 0 for
// an unknown kind.
func (k ScalarKind) ByteSize() int {
	if k >= scalarCount {
		return 0
	}
	return scalarByteSizes[k]
}

// IsValid returns true if k is a known scalar kind.
func (k ScalarKind) IsValid() bool {
	return k < scalarCount
}

func (k ScalarKind) String() string {
	if k >= scalarCount {
		return "Unknown"
	}
	return scalarNames[k]
}
