package fileinspector

import (
	"fmt"
	"iter"
	"strconv"
)

// BlockSize is the number of bytes decoded at a time while scanning.
// It is a multiple of every column byte width.
const BlockSize = 512

// Row is one display row: the byte offset it starts at and one value per
// layout column.
type Row struct {
	Offset int     `json:"offset" yaml:"offset"`
	Values []Value `json:"values" yaml:"values"`
}

// Cells returns the offset followed by the text of every value.
func (r Row) Cells() []string {
	cells := make([]string, 0, len(r.Values)+1)
	cells = append(cells, strconv.Itoa(r.Offset))
	for _, v := range r.Values {
		cells = append(cells, v.String())
	}
	return cells
}

// Scan decodes src[start:end+1] under layout l and yields its rows in order.
// The range is checked before anything is decoded; start and end are
// inclusive and must lie inside src.
func Scan(l *Layout, src []byte, start, end int) (iter.Seq[Row], error) {
	if err := checkRange(start, end, len(src)); err != nil {
		return nil, err
	}
	return func(yield func(Row) bool) {
		stride := l.rowStride
		last := end + 1
		offset := start
		for offset < last {
			n := min(BlockSize, last-offset)
			block := src[offset : offset+n]

			decoded := make([][]Value, len(l.columns))
			for i, col := range l.columns {
				decoded[i] = Decode(block, col)
			}

			rows := (n + stride - 1) / stride
			for k := range rows {
				values := make([]Value, len(decoded))
				for i, items := range decoded {
					if k < len(items) {
						values[i] = items[k]
					}
				}
				if !yield(Row{Offset: offset, Values: values}) {
					return
				}
				offset += stride
			}
		}
	}, nil
}

func checkRange(start, end, size int) error {
	switch {
	case start > end:
		return fmt.Errorf("%w: starting byte %d is after ending byte %d", ErrRange, start, end)
	case start < 0:
		return fmt.Errorf("%w: starting byte %d is negative", ErrRange, start)
	case end >= size:
		return fmt.Errorf("%w: ending byte %d is past the end of %d bytes", ErrRange, end, size)
	}
	return nil
}
