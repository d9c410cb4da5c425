package geom

import "testing"

func TestParsePairInt(t *testing.T) {
	tests := []struct {
		in   string
		l, r int
		ok   bool
	}{
		{"", 0, 0, false},
		{"10", 0, 0, false},
		{",10", 0, 0, false},
		{"10,", 0, 0, false},
		{"10,20", 10, 20, true},
		{"10,20xy", 0, 0, false},
		{" 10,20", 0, 0, false},
		{"-3,+4", -3, 4, true},
		{"1,2,3", 0, 0, false},
	}
	for _, tt := range tests {
		l, r, ok := ParsePair[int](tt.in, ',')
		if ok != tt.ok || l != tt.l || r != tt.r {
			t.Errorf("ParsePair(%q) = %d,%d,%v want %d,%d,%v", tt.in, l, r, ok, tt.l, tt.r, tt.ok)
		}
	}
}

func TestParsePairFloat(t *testing.T) {
	if _, _, ok := ParsePair[float64]("0.5x", 'x'); ok {
		t.Error("0.5x should not parse")
	}
	l, r, ok := ParsePair[float64]("0.5x1.5", 'x')
	if !ok || l != 0.5 || r != 1.5 {
		t.Errorf("0.5x1.5 = %v,%v,%v", l, r, ok)
	}
	if _, _, ok := ParsePair[uint]("-1,2", ','); ok {
		t.Error("negative uint should not parse")
	}
}

func TestParseComplex(t *testing.T) {
	c, ok := ParseComplex("1.25,-0.0625")
	if !ok || c != complex(1.25, -0.0625) {
		t.Fatalf("ParseComplex = %v,%v", c, ok)
	}
	if _, ok := ParseComplex(",-0.0625"); ok {
		t.Error("empty real part should not parse")
	}
}

func TestParseDims(t *testing.T) {
	d, ok := ParseDims("1000x750")
	if !ok || d != (Dims{1000, 750}) {
		t.Fatalf("ParseDims = %+v,%v", d, ok)
	}
	for _, s := range []string{"0x10", "10x-1", "10,10", "10x", "axb", "4611686018427387904x4", "3x4611686018427387904"} {
		if _, ok := ParseDims(s); ok {
			t.Errorf("ParseDims(%q) should fail", s)
		}
	}
}

func TestParseBounds(t *testing.T) {
	b, ok := ParseBounds("  -1.20,0.35   -1,0.20 ")
	if !ok || b != Default {
		t.Fatalf("ParseBounds = %+v,%v", b, ok)
	}
	for _, s := range []string{"", "-1.20,0.35", "-1.20,0.35 x", "a b c"} {
		if _, ok := ParseBounds(s); ok {
			t.Errorf("ParseBounds(%q) should fail", s)
		}
	}
}
