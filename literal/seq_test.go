package literal

import (
	"testing"
)

// TestLiteralBasic tests basic Literal type functionality
func TestLiteralBasic(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		complete bool
		wantLen  int
		wantStr  string
	}{
		{
			name:     "simple complete literal",
			bytes:    []byte("hello"),
			complete: true,
			wantLen:  5,
			wantStr:  "literal{hello, complete=true}",
		},
		{
			name:     "incomplete literal",
			bytes:    []byte("test"),
			complete: false,
			wantLen:  4,
			wantStr:  "literal{test, complete=false}",
		},
		{
			name:     "multibyte",
			bytes:    []byte("日本"),
			complete: true,
			wantLen:  6,
			wantStr:  "literal{日本, complete=true}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := NewLiteral(tt.bytes, tt.complete)

			if got := lit.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := lit.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestSeqBasic(t *testing.T) {
	tests := []struct {
		name        string
		literals    []Literal
		wantLen     int
		isEmpty     bool
		allComplete bool
		minLen      int
	}{
		{
			name:     "empty sequence",
			literals: nil,
			wantLen:  0,
			isEmpty:  true,
		},
		{
			name:        "single complete literal",
			literals:    []Literal{NewLiteral([]byte("test"), true)},
			wantLen:     1,
			allComplete: true,
			minLen:      4,
		},
		{
			name: "mixed completeness",
			literals: []Literal{
				NewLiteral([]byte("foo"), true),
				NewLiteral([]byte("ba"), false),
			},
			wantLen: 2,
			minLen:  2,
		},
		{
			name: "all complete",
			literals: []Literal{
				NewLiteral([]byte("cat"), true),
				NewLiteral([]byte("horse"), true),
			},
			wantLen:     2,
			allComplete: true,
			minLen:      3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := NewSeq(tt.literals...)

			if got := seq.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := seq.IsEmpty(); got != tt.isEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.isEmpty)
			}
			if got := seq.AllComplete(); got != tt.allComplete {
				t.Errorf("AllComplete() = %v, want %v", got, tt.allComplete)
			}
			if got := seq.MinLen(); got != tt.minLen {
				t.Errorf("MinLen() = %d, want %d", got, tt.minLen)
			}
		})
	}
}

func TestNilSeq(t *testing.T) {
	var seq *Seq
	if seq.Len() != 0 || !seq.IsEmpty() || seq.AllComplete() || seq.MinLen() != 0 {
		t.Error("nil *Seq should behave as empty")
	}
}

func TestSeqDedup(t *testing.T) {
	seq := NewSeq(
		NewLiteral([]byte("dog"), true),
		NewLiteral([]byte("cat"), false),
		NewLiteral([]byte("dog"), false),
		NewLiteral([]byte("cat"), true),
		NewLiteral([]byte("emu"), true),
	)
	seq.Dedup()

	want := []Literal{
		NewLiteral([]byte("dog"), true),
		NewLiteral([]byte("cat"), false),
		NewLiteral([]byte("emu"), true),
	}
	if seq.Len() != len(want) {
		t.Fatalf("Dedup() left %d literals, want %d", seq.Len(), len(want))
	}
	for i, w := range want {
		got := seq.Get(i)
		if string(got.Bytes) != string(w.Bytes) || got.Complete != w.Complete {
			t.Errorf("Get(%d) = %v, want %v", i, got, w)
		}
	}
}

// TestLongestCommonPrefix tests LCP algorithm
func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input []Literal
		want  string
	}{
		{
			name: "common prefix - he",
			input: []Literal{
				NewLiteral([]byte("hello"), true),
				NewLiteral([]byte("help"), true),
				NewLiteral([]byte("hero"), true),
			},
			want: "he",
		},
		{
			name: "no common prefix",
			input: []Literal{
				NewLiteral([]byte("abc"), true),
				NewLiteral([]byte("def"), true),
			},
			want: "",
		},
		{
			name:  "one literal - returns itself",
			input: []Literal{NewLiteral([]byte("single"), true)},
			want:  "single",
		},
		{
			name:  "empty sequence",
			input: nil,
			want:  "",
		},
		{
			name: "varying lengths with common prefix",
			input: []Literal{
				NewLiteral([]byte("test"), true),
				NewLiteral([]byte("testing"), true),
				NewLiteral([]byte("tester"), true),
			},
			want: "test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSeq(tt.input...).LongestCommonPrefix()
			if string(got) != tt.want {
				t.Errorf("LongestCommonPrefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLongestCommonPrefixNoAlias(t *testing.T) {
	seq := NewSeq(NewLiteral([]byte("abc"), true))
	lcp := seq.LongestCommonPrefix()
	lcp[0] = 'z'
	if string(seq.Get(0).Bytes) != "abc" {
		t.Error("LongestCommonPrefix() result aliases literal bytes")
	}
}
