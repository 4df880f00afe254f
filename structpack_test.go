package structpack_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/wippyai/structpack"
)

func TestSizeOf(t *testing.T) {
	tests := []struct {
		format string
		want   int
	}{
		{"", 0},
		{"<4s", 4},
		{"<2H", 4},
		{"<bi", 5},
		{"=bi", 5},
		{">bi", 5},
		{"!I", 4},
		{"@bi", 8},
		{"bi", 8},
		{"bq", 16},
		{"=bq", 9},
		{"<10x", 10},
		{"p", 1},
		{"5p", 5},
		{"s", 0},
		{"<12B", 12},
		{"<H H", 4},
	}
	for _, tt := range tests {
		if got := structpack.SizeOf(tt.format); got != tt.want {
			t.Errorf("SizeOf(%q) = %d, want %d", tt.format, got, tt.want)
		}
	}
}

func TestSizeAdditivity(t *testing.T) {
	for _, prefix := range []string{"", "@", "=", "<", ">", "!"} {
		if got, want := structpack.SizeOf(prefix+"5i"), 5*structpack.SizeOf(prefix+"i"); got != want {
			t.Errorf("SizeOf(%q) = %d, want %d", prefix+"5i", got, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		code string
		val  any
	}{
		{"c", byte('A')},
		{"b", int8(-5)},
		{"B", uint8(200)},
		{"?", true},
		{"h", int16(-12345)},
		{"H", uint16(54321)},
		{"i", int32(-1 << 30)},
		{"I", uint32(0xDEADBEEF)},
		{"l", int32(7)},
		{"L", uint32(7)},
		{"q", int64(-1 << 40)},
		{"Q", uint64(1<<63 + 5)},
		{"f", float32(1.5)},
		{"d", float64(-2.25)},
	}
	for _, prefix := range []string{"<", ">", "=", "!"} {
		for _, tt := range tests {
			format := prefix + tt.code
			buf, err := structpack.Pack(format, []any{tt.val}, true)
			if err != nil {
				t.Fatalf("Pack(%q): %v", format, err)
			}
			vals, err := structpack.UnpackChecked(format, buf)
			if err != nil {
				t.Fatalf("Unpack(%q): %v", format, err)
			}
			if len(vals) != 1 || vals[0] != tt.val {
				t.Errorf("round trip %q: got %v (%T), want %v (%T)", format, vals[0], vals[0], tt.val, tt.val)
			}
		}
	}
}

func TestEndiannessSymmetry(t *testing.T) {
	buf, err := structpack.PackArgs("<I", uint32(0xCAFEBABE))
	if err != nil {
		t.Fatal(err)
	}
	rev := make([]byte, len(buf))
	for i, b := range buf {
		rev[len(buf)-1-i] = b
	}
	vals, err := structpack.UnpackChecked(">I", rev)
	if err != nil {
		t.Fatal(err)
	}
	if vals[0] != uint32(0xCAFEBABE) {
		t.Errorf("byte-reversed round trip: got %#x", vals[0])
	}
}

func TestNativeOrderPrefix(t *testing.T) {
	explicit := "<H"
	if !structpack.DetectHost().LittleEndian {
		explicit = ">H"
	}
	a, err := structpack.PackArgs("=H", uint16(0x1234))
	if err != nil {
		t.Fatal(err)
	}
	b, err := structpack.PackArgs(explicit, uint16(0x1234))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("'=' order mismatch: % x vs % x", a, b)
	}
}

func TestFloatBitPattern(t *testing.T) {
	buf, err := structpack.PackArgs("<I", uint32(0x42470000))
	if err != nil {
		t.Fatal(err)
	}
	vals, err := structpack.UnpackChecked("<f", buf)
	if err != nil {
		t.Fatal(err)
	}
	if vals[0] != float32(49.75) {
		t.Errorf("bit pattern 0x42470000: got %v, want 49.75", vals[0])
	}
}

func TestUnpackTwoUint16(t *testing.T) {
	vals, err := structpack.UnpackChecked("<2H", []byte{0x01, 0x00, 0x02, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	want := []any{uint16(1), uint16(2)}
	if !reflect.DeepEqual(vals, want) {
		t.Errorf("got %v, want %v", vals, want)
	}
}

func TestUnpackFixedText(t *testing.T) {
	vals, err := structpack.UnpackChecked("<4s", []byte{0x41, 0x42, 0x00, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []any{"AB"}) {
		t.Errorf("got %v, want [AB]", vals)
	}
}

func TestTextTruncation(t *testing.T) {
	buf, err := structpack.PackArgs("<4s", "hello")
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 4 {
		t.Fatalf("buffer length %d, want 4", len(buf))
	}
	vals, err := structpack.UnpackChecked("<4s", buf)
	if err != nil {
		t.Fatal(err)
	}
	if vals[0] != "hell" {
		t.Errorf("got %q, want %q", vals[0], "hell")
	}
}

func TestTextZeroFill(t *testing.T) {
	buf, err := structpack.PackArgs("<6s", "ab")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{'a', 'b', 0, 0, 0, 0}
	if !bytes.Equal(buf, want) {
		t.Errorf("got % x, want % x", buf, want)
	}
}

func TestPascalClamp(t *testing.T) {
	long := strings.Repeat("x", 300)
	buf, err := structpack.PackArgs("<300p", long)
	if err != nil {
		t.Fatal(err)
	}
	if buf[0] != 255 {
		t.Fatalf("prefix byte %d, want 255", buf[0])
	}
	for i := 1; i <= 255; i++ {
		if buf[i] != 'x' {
			t.Fatalf("content byte %d = %#x, want 'x'", i, buf[i])
		}
	}
	for i := 256; i < 300; i++ {
		if buf[i] != 0 {
			t.Fatalf("fill byte %d = %#x, want 0", i, buf[i])
		}
	}
	vals, err := structpack.UnpackChecked("<300p", buf)
	if err != nil {
		t.Fatal(err)
	}
	if vals[0] != long[:255] {
		t.Errorf("decoded length %d, want 255", len(vals[0].(string)))
	}
}

func TestPascalRoundTrip(t *testing.T) {
	buf, err := structpack.PackArgs("<10p", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if buf[0] != 2 {
		t.Fatalf("prefix byte %d, want 2", buf[0])
	}
	vals, err := structpack.UnpackChecked("<10p", buf)
	if err != nil {
		t.Fatal(err)
	}
	if vals[0] != "hi" {
		t.Errorf("got %q, want %q", vals[0], "hi")
	}
}

func TestPascalBarePrefix(t *testing.T) {
	// A 'p' with no count is a single prefix byte with no room for
	// content.
	buf, err := structpack.PackArgs("<p", "abc")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, []byte{0}) {
		t.Errorf("got % x, want 00", buf)
	}
}

func TestShortBufferError(t *testing.T) {
	_, err := structpack.UnpackChecked("<i", []byte{1, 2, 3})
	if !errors.Is(err, structpack.ErrShortBuffer) {
		t.Fatalf("got %v, want ErrShortBuffer", err)
	}
}

func TestMissingValueError(t *testing.T) {
	_, err := structpack.Pack("<2I", []any{uint32(1)}, true)
	if !errors.Is(err, structpack.ErrMissingValue) {
		t.Fatalf("got %v, want ErrMissingValue", err)
	}
}

func TestUncheckedMissingValuesZeroFill(t *testing.T) {
	buf, err := structpack.Pack("<2H", []any{uint16(0xFFFF)}, false)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xFF, 0xFF, 0x00, 0x00}
	if !bytes.Equal(buf, want) {
		t.Errorf("got % x, want % x", buf, want)
	}
}

func TestVariadicForcesChecking(t *testing.T) {
	_, err := structpack.PackArgs("<2H", uint16(1))
	if !errors.Is(err, structpack.ErrMissingValue) {
		t.Fatalf("got %v, want ErrMissingValue", err)
	}
}

func TestUnpackFromSequential(t *testing.T) {
	first, err := structpack.PackArgs("<HI", uint16(1), uint32(2))
	if err != nil {
		t.Fatal(err)
	}
	second, err := structpack.PackArgs("<HI", uint16(3), uint32(4))
	if err != nil {
		t.Fatal(err)
	}
	data := append(first, second...)

	vals, err := structpack.UnpackFrom("<HI", data, true, len(first))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{uint16(3), uint32(4)}
	if !reflect.DeepEqual(vals, want) {
		t.Errorf("got %v, want %v", vals, want)
	}
}

func TestPackInto(t *testing.T) {
	buf := make([]byte, 12)
	if err := structpack.PackInto("<I", buf, 4, []any{uint32(0x01020304)}, true); err != nil {
		t.Fatal(err)
	}
	vals, err := structpack.UnpackFrom("<I", buf, true, 4)
	if err != nil {
		t.Fatal(err)
	}
	if vals[0] != uint32(0x01020304) {
		t.Errorf("got %#x", vals[0])
	}
}

func TestPackIntoShortBuffer(t *testing.T) {
	buf := make([]byte, 6)
	err := structpack.PackInto("<2I", buf, 0, []any{uint32(1), uint32(2)}, true)
	if !errors.Is(err, structpack.ErrShortBuffer) {
		t.Fatalf("got %v, want ErrShortBuffer", err)
	}
}

func TestUnknownCharactersIgnored(t *testing.T) {
	if got := structpack.SizeOf("<H 3Z H"); got != 4 {
		t.Fatalf("SizeOf = %d, want 4", got)
	}
	vals, err := structpack.UnpackChecked("<H 3Z H", []byte{1, 0, 2, 0})
	if err != nil {
		t.Fatal(err)
	}
	want := []any{uint16(1), uint16(2)}
	if !reflect.DeepEqual(vals, want) {
		t.Errorf("got %v, want %v", vals, want)
	}
}

func TestMultiDigitCount(t *testing.T) {
	data := make([]byte, 12)
	for i := range data {
		data[i] = byte(i)
	}
	vals, err := structpack.UnpackChecked("<12B", data)
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 12 {
		t.Fatalf("got %d values, want 12", len(vals))
	}
	if vals[11] != uint8(11) {
		t.Errorf("last value %v, want 11", vals[11])
	}
}

func TestPadProducesNoValue(t *testing.T) {
	vals, err := structpack.UnpackChecked("<xH", []byte{0xAA, 0x01, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []any{uint16(1)}) {
		t.Errorf("got %v, want [1]", vals)
	}
}

func TestZeroLengthText(t *testing.T) {
	if got := structpack.SizeOf("<s"); got != 0 {
		t.Fatalf("SizeOf(\"<s\") = %d, want 0", got)
	}
	vals, err := structpack.UnpackChecked("<s", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []any{""}) {
		t.Errorf("got %v, want one empty string", vals)
	}
}

func TestCoercionTruncates(t *testing.T) {
	buf, err := structpack.PackArgs("<B", 0x1FF)
	if err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0xFF {
		t.Errorf("got %#x, want 0xFF", buf[0])
	}
}

func TestPointerCode(t *testing.T) {
	host := structpack.DetectHost()
	if got := structpack.SizeOf("P"); got != host.PointerSize {
		t.Errorf("SizeOf(\"P\") = %d, want %d", got, host.PointerSize)
	}
	// P is native-mode only; under an explicit prefix it is skipped.
	if got := structpack.SizeOf("<P"); got != 0 {
		t.Errorf("SizeOf(\"<P\") = %d, want 0", got)
	}
}

func TestNativeAlignmentPadding(t *testing.T) {
	buf, err := structpack.PackArgs("bq", int8(1), int64(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 16 {
		t.Fatalf("buffer length %d, want 16", len(buf))
	}
	vals, err := structpack.UnpackChecked("bq", buf)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{int8(1), int64(2)}
	if !reflect.DeepEqual(vals, want) {
		t.Errorf("got %v, want %v", vals, want)
	}
}

func TestFields(t *testing.T) {
	fields := structpack.Fields("<H4sB")
	want := []structpack.FieldInfo{
		{Code: 'H', Offset: 0, Size: 2},
		{Code: 's', Offset: 2, Size: 4},
		{Code: 'B', Offset: 6, Size: 1},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("got %+v, want %+v", fields, want)
	}
}
