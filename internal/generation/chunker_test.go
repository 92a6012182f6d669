package generation

import (
	"strings"
	"testing"
)

func TestChunks(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
		want []string
	}{
		{"empty text", "", 4, nil},
		{"shorter than size", "abc", 4, []string{"abc"}},
		{"exact multiple", "abcdefgh", 4, []string{"abcd", "efgh"}},
		{"with remainder", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"size one", "abc", 1, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for chunk := range Chunks(tt.text, tt.size) {
				got = append(got, chunk)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d chunks %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestChunksRoundTrip(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 400)
	var rebuilt strings.Builder
	n := 0
	for chunk := range Chunks(text, 4000) {
		if len(chunk) > 4000 {
			t.Fatalf("chunk %d has %d characters, limit 4000", n, len(chunk))
		}
		rebuilt.WriteString(chunk)
		n++
	}
	if rebuilt.String() != text {
		t.Error("concatenated chunks do not reproduce the source text")
	}
	if want := ChunkCount(text, 4000); n != want {
		t.Errorf("produced %d chunks, ChunkCount says %d", n, want)
	}
}

func TestChunksRestartable(t *testing.T) {
	seq := Chunks("abcdefgh", 3)
	first := countSeq(seq)
	second := countSeq(seq)
	if first != second {
		t.Errorf("second iteration saw %d chunks, first saw %d", second, first)
	}
}

func TestChunksEarlyStop(t *testing.T) {
	n := 0
	for range Chunks(strings.Repeat("x", 100), 10) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("stopped after %d chunks, want 2", n)
	}
}

func countSeq(seq func(func(string) bool)) int {
	n := 0
	seq(func(string) bool {
		n++
		return true
	})
	return n
}

func TestChunkCount(t *testing.T) {
	tests := []struct {
		length, size, want int
	}{
		{0, 4000, 0},
		{1, 4000, 1},
		{4000, 4000, 1},
		{4001, 4000, 2},
		{12000, 4000, 3},
	}
	for _, tt := range tests {
		text := strings.Repeat("x", tt.length)
		if got := ChunkCount(text, tt.size); got != tt.want {
			t.Errorf("ChunkCount of %d bytes at size %d = %d, want %d", tt.length, tt.size, got, tt.want)
		}
	}
}
