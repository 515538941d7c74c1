package fileinspector

import (
	"iter"
	"strconv"
)

// Source is tabular data that [Write] can render. It is implemented by
// [Dump] and [Catalog].
type Source interface {
	table() (*table, error)
}

// table is the shape every writer consumes: a fixed header, minimum column
// widths known up front, and rows produced lazily so that writers which do
// not need the whole table can stream.
type table struct {
	header  []string
	widths  []int
	aligns  []Alignment
	records iter.Seq[record]
}

// record is one row as cell text plus its structured form for the JSON,
// YAML and template writers.
type record struct {
	cells []string
	item  any
}

// Dump is a byte range of Data decoded under Layout. Start and End are
// inclusive offsets into Data.
type Dump struct {
	Layout *Layout
	Data   []byte
	Start  int
	End    int
}

// Rows scans the dump range. See [Scan].
func (d Dump) Rows() (iter.Seq[Row], error) {
	return Scan(d.Layout, d.Data, d.Start, d.End)
}

func (d Dump) table() (*table, error) {
	rows, err := d.Rows()
	if err != nil {
		return nil, err
	}

	cols := d.Layout.columns
	t := &table{
		header: append([]string{"Offset"}, d.Layout.Labels()...),
		widths: make([]int, len(cols)+1),
		aligns: make([]Alignment, len(cols)+1),
	}
	t.widths[0] = len(strconv.Itoa(d.End))
	t.aligns[0] = AlignRight
	for i, col := range cols {
		t.widths[i+1] = col.DisplayWidth
		t.aligns[i+1] = AlignRight
	}
	t.records = func(yield func(record) bool) {
		for row := range rows {
			if !yield(record{cells: row.Cells(), item: row}) {
				return
			}
		}
	}
	return t, nil
}

// Catalog lists format codes with their metadata.
type Catalog []Column

// NewCatalog describes every supported code in catalog order.
func NewCatalog() Catalog {
	cat := make(Catalog, 0, len(codes))
	for _, c := range codes {
		col, _ := Describe(byte(c))
		cat = append(cat, col)
	}
	return cat
}

func (c Catalog) table() (*table, error) {
	t := &table{
		header: []string{"Code", "Bytes", "Width", "Caption"},
		aligns: []Alignment{AlignLeft, AlignRight, AlignRight, AlignLeft},
	}
	cells := make([][]string, len(c))
	for i, col := range c {
		cells[i] = []string{
			col.Code.String(),
			strconv.Itoa(col.ByteWidth),
			strconv.Itoa(col.DisplayWidth),
			col.Caption,
		}
	}
	t.widths = computeWidths(len(t.header), cells)
	t.records = func(yield func(record) bool) {
		for i, col := range c {
			if !yield(record{cells: cells[i], item: col}) {
				return
			}
		}
	}
	return t, nil
}
