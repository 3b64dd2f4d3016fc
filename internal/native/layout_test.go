package native

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	A uint8
	B int32
	C *int64
}

func TestLayoutOf(t *testing.T) {
	got := LayoutOf("sample", &sample{})

	ptr := SizeOf[*int64]()

	want := Layout{
		Name:  "sample",
		Size:  8 + ptr,
		Align: ptr,
		Fields: []Field{
			{Name: "A", Offset: 0, Size: 1},
			{Name: "B", Offset: 4, Size: 4},
			{Name: "C", Offset: 8, Size: ptr},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, map[string]uintptr{"A": 0, "B": 4, "C": 8}, got.Offsets())
}

func TestLayoutOfNonStruct(t *testing.T) {
	assert.Panics(t, func() { LayoutOf("int", 1) })
}
