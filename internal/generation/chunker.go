package generation

import "iter"

// Chunks splits text into contiguous windows of at most size bytes, in
// order, with no overlap and no gaps. The sequence is lazy and can be
// ranged over more than once.
func Chunks(text string, size int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if size <= 0 {
			return
		}
		for i := 0; i < len(text); i += size {
			end := i + size
			if end > len(text) {
				end = len(text)
			}
			if !yield(text[i:end]) {
				return
			}
		}
	}
}

// ChunkCount returns the number of chunks Chunks will produce.
func ChunkCount(text string, size int) int {
	if size <= 0 || len(text) == 0 {
		return 0
	}
	return (len(text) + size - 1) / size
}
