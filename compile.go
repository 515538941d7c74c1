package fileinspector

// Layout is a compiled format specification: the ordered columns and the
// row stride that keeps them in lockstep. A Layout is read-only once built.
type Layout struct {
	spec      string
	columns   []Column
	rowStride int
}

// Compile builds a Layout from a format specification such as "ash".
// Every character selects one column, left to right; repeats are allowed.
func Compile(spec string) (*Layout, error) {
	if spec == "" {
		return nil, ErrEmptyFormat
	}

	// Resolve each character and find the narrowest column.
	resolved := make([]Column, 0, len(spec))
	stride := 0
	for i := 0; i < len(spec); i++ {
		col, err := Describe(spec[i])
		if err != nil {
			return nil, err
		}
		if stride == 0 || col.ByteWidth < stride {
			stride = col.ByteWidth
		}
		resolved = append(resolved, col)
	}

	// The stride is only known once every width has been seen.
	columns := make([]Column, len(resolved))
	for i, col := range resolved {
		col.ItemsPerGroup = itemsPerGroup(col, stride)
		columns[i] = col
	}

	return &Layout{spec: spec, columns: columns, rowStride: stride}, nil
}

func itemsPerGroup(col Column, stride int) int {
	switch col.Code {
	case CodeBitsLSB, CodeBitsMSB:
		return 8
	case CodeHexLow, CodeHexHigh:
		return 2
	default:
		return col.ByteWidth / stride
	}
}

// Spec returns the format specification the layout was compiled from.
func (l *Layout) Spec() string { return l.spec }

// RowStride returns the number of bytes one display row advances.
func (l *Layout) RowStride() int { return l.rowStride }

// Columns returns a copy of the compiled columns in display order.
func (l *Layout) Columns() []Column {
	out := make([]Column, len(l.columns))
	copy(out, l.columns)
	return out
}

// Labels returns the header label of every column.
func (l *Layout) Labels() []string {
	out := make([]string, len(l.columns))
	for i, col := range l.columns {
		out[i] = col.Label()
	}
	return out
}
