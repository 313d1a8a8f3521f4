package vbuf

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
)

// allTypeAttrs lists every attribute type at every component count, so bulk
// copies are exercised through each specialized path.
func allTypeAttrs() []Attribute {
	types := []DataType{Int8, Uint8, Int16, Uint16, Int32, Uint32, Float32}
	var attrs []Attribute
	for _, typ := range types {
		for n := 1; n <= 4; n++ {
			attrs = append(attrs, Attribute{
				Name:          typ.String() + "x" + string(rune('0'+n)),
				NumComponents: n,
				Type:          typ,
			})
		}
	}
	return attrs
}

// sample returns values representable by every attribute type.
func sample(count, seed int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = float64((i*7 + seed*13) % 100)
	}
	return out
}

func TestWriteReadRoundTrip(t *testing.T) {
	const vertices = 5
	for _, interleaved := range []bool{true, false} {
		it, _ := newTestIterator(t, vertices, interleaved, allTypeAttrs()...)

		written := make(map[string][]float64)
		for i, a := range it.Accessors() {
			data := sample(vertices*a.NumComponents(), i)
			written[a.Name()] = data
			if err := it.WriteData(a.Name(), data, vertices); err != nil {
				t.Fatalf("WriteData(%s): %v", a.Name(), err)
			}
		}
		for _, a := range it.Accessors() {
			got := make([]float64, vertices*a.NumComponents())
			n, err := it.ReadData(a.Name(), got)
			if err != nil || n != vertices {
				t.Fatalf("ReadData(%s) = %d, %v", a.Name(), n, err)
			}
			for j, want := range written[a.Name()] {
				if got[j] != want {
					t.Errorf("interleaved=%v %s[%d] = %v, want %v", interleaved, a.Name(), j, got[j], want)
					break
				}
			}
		}
		if err := it.End(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestWriteReadTypedSlices(t *testing.T) {
	for _, interleaved := range []bool{true, false} {
		it, _ := newTestIterator(t, 3, interleaved, posColor()...)

		pos := []float32{-0.9, -0.9, 0, 0.9, -0.9, 0, 0, 0.9, 0}
		col := []uint8{255, 0, 0, 255, 0, 255, 0, 255, 0, 0, 255, 255}
		if err := WriteData(it, "POSITION", pos, 3); err != nil {
			t.Fatal(err)
		}
		if err := WriteData(it, "COLOR", col, 3); err != nil {
			t.Fatal(err)
		}

		gotPos := make([]float32, 9)
		gotCol := make([]uint8, 12)
		if n, err := ReadData(it, "POSITION", gotPos); n != 3 || err != nil {
			t.Fatalf("ReadData(POSITION) = %d, %v", n, err)
		}
		if n, err := ReadData(it, "COLOR", gotCol); n != 3 || err != nil {
			t.Fatalf("ReadData(COLOR) = %d, %v", n, err)
		}
		for i := range pos {
			if gotPos[i] != pos[i] {
				t.Errorf("interleaved=%v POSITION[%d] = %v, want %v", interleaved, i, gotPos[i], pos[i])
			}
		}
		if !bytes.Equal(gotCol, col) {
			t.Errorf("interleaved=%v COLOR = %v, want %v", interleaved, gotCol, col)
		}

		// Converting paths: ints into the float attribute, floats out of
		// the byte attribute.
		if err := WriteData(it, "POSITION", []int{1, 2, 3}, 1); err != nil {
			t.Fatal(err)
		}
		asFloat := make([]float64, 12)
		if _, err := ReadData(it, "COLOR", asFloat); err != nil {
			t.Fatal(err)
		}
		if asFloat[0] != 255 || asFloat[5] != 255 {
			t.Errorf("COLOR as float64 = %v", asFloat)
		}
		if got := it.Element("POSITION").Get(2); got != 3 {
			t.Errorf("POSITION.Get(2) = %v, want 3", got)
		}
		it.End()
	}
}

func TestInterleavedPackedEquivalence(t *testing.T) {
	const vertices = 4
	data := map[string][]float64{
		"POSITION": sample(vertices*3, 1),
		"COLOR":    sample(vertices*4, 2),
	}

	read := func(interleaved bool) map[string][]float64 {
		it, _ := newTestIterator(t, vertices, interleaved, posColor()...)
		defer it.End()
		out := make(map[string][]float64)
		for name, d := range data {
			if err := it.WriteData(name, d, vertices); err != nil {
				t.Fatal(err)
			}
		}
		for name, d := range data {
			got, n, err := AppendData(it, name, []float64(nil))
			if err != nil || n != vertices || len(got) != len(d) {
				t.Fatalf("AppendData(%s) = len %d, %d, %v", name, len(got), n, err)
			}
			out[name] = got
		}
		return out
	}

	a, b := read(true), read(false)
	for name := range data {
		for i := range a[name] {
			if a[name][i] != b[name][i] {
				t.Errorf("%s[%d]: interleaved %v, packed %v", name, i, a[name][i], b[name][i])
			}
		}
	}
}

func TestPackedWritePreservesOtherRegions(t *testing.T) {
	const vertices = 3
	f, _ := NewFormat(vertices, false, posColor()...)
	seed := bytes.Repeat([]byte{0xAB}, f.ByteSize())
	vb, _ := NewBuffer(f, WithData(seed))

	err := Edit(vb, func(it *Iterator) error {
		// Far more values than the region holds: only the prefix is used.
		return it.WriteData("POSITION", sample(100, 3), vertices)
	})
	if err != nil {
		t.Fatal(err)
	}

	data, _ := vb.Bytes()
	col := f.Elements[1]
	if !bytes.Equal(data[col.Offset:], seed[col.Offset:]) {
		t.Errorf("COLOR region modified: %v", data[col.Offset:])
	}

	err = Edit(vb, func(it *Iterator) error {
		return WriteData(it, "COLOR", bytes.Repeat([]byte{1}, 64), vertices)
	})
	if err != nil {
		t.Fatal(err)
	}
	data, _ = vb.Bytes()
	if data[col.Offset-1] == 1 {
		t.Errorf("COLOR write spilled into POSITION: %v", data[:col.Offset])
	}
	if !bytes.Equal(data[col.Offset:], bytes.Repeat([]byte{1}, 12)) {
		t.Errorf("COLOR region = %v, want all ones", data[col.Offset:])
	}
}

func TestWriteDataClampsToCapacity(t *testing.T) {
	var logs bytes.Buffer
	for _, interleaved := range []bool{true, false} {
		f, _ := NewFormat(2, interleaved, posColor()...)
		vb, _ := NewBuffer(f)
		logs.Reset()

		err := Edit(vb, func(it *Iterator) error {
			return it.WriteData("COLOR", sample(40, 0), 10)
		}, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
		if err != nil {
			t.Fatalf("interleaved=%v WriteData: %v", interleaved, err)
		}
		if !bytes.Contains(logs.Bytes(), []byte("write clamped")) {
			t.Errorf("interleaved=%v expected clamp warning, got %s", interleaved, logs.String())
		}

		data, _ := vb.Bytes()
		want := sample(8, 0)
		col := f.Elements[1]
		for v := 0; v < 2; v++ {
			got := data[col.Offset+v*col.Stride : col.Offset+v*col.Stride+4]
			for c := 0; c < 4; c++ {
				if float64(got[c]) != want[v*4+c] {
					t.Errorf("interleaved=%v vertex %d = %v, want %v", interleaved, v, got, want[v*4:v*4+4])
					break
				}
			}
		}
		// POSITION bytes stay zero.
		for v := 0; v < 2; v++ {
			p := f.Elements[0].Offset + v*f.Elements[0].Stride
			if !bytes.Equal(data[p:p+12], make([]byte, 12)) {
				t.Errorf("interleaved=%v POSITION vertex %d modified", interleaved, v)
			}
		}
	}
}

func TestWriteDataShortSource(t *testing.T) {
	it, _ := newTestIterator(t, 3, false, posColor()...)
	defer it.End()

	if err := it.WriteData("POSITION", []float64{1, 2, 3, 4, 5}, 3); err != nil {
		t.Fatal(err)
	}
	got := make([]float64, 9)
	it.ReadData("POSITION", got)
	want := []float64{1, 2, 3, 0, 0, 0, 0, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("POSITION = %v, want %v", got, want)
		}
	}

	if err := it.WriteData("POSITION", nil, 0); err != nil {
		t.Errorf("WriteData(nil) = %v, want nil", err)
	}
}

func TestReadDataShortBuffer(t *testing.T) {
	it, _ := newTestIterator(t, 2, true, posColor()...)
	defer it.End()

	out := []float64{42, 42, 42}
	n, err := it.ReadData("POSITION", out)
	if !errors.Is(err, ErrShortBuffer) || n != 0 {
		t.Errorf("ReadData = %d, %v, want 0, ErrShortBuffer", n, err)
	}
	if out[0] != 42 {
		t.Errorf("out modified: %v", out)
	}
}

func TestAppendDataReusesDestination(t *testing.T) {
	it, _ := newTestIterator(t, 2, true, posColor()...)
	defer it.End()

	it.WriteData("COLOR", []float64{1, 2, 3, 4, 5, 6, 7, 8}, 2)

	dst := []uint16{9, 9, 9}
	dst, n, err := AppendData(it, "COLOR", dst)
	if err != nil || n != 2 {
		t.Fatalf("AppendData = %d, %v", n, err)
	}
	want := []uint16{1, 2, 3, 4, 5, 6, 7, 8}
	if len(dst) != len(want) {
		t.Fatalf("len(dst) = %d, want %d", len(dst), len(want))
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst = %v, want %v", dst, want)
			break
		}
	}

	keep := []uint16{5}
	got, n, err := AppendData(it, "NORMAL", keep)
	if err != nil || n != 0 || len(got) != 1 || got[0] != 5 {
		t.Errorf("AppendData(NORMAL) = %v, %d, %v, want [5], 0, nil", got, n, err)
	}
}
