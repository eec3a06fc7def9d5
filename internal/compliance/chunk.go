package compliance

import "strings"

// ChunkText splits text into windows of size words, each starting
// size-overlap words after the previous one.
// Empty text yields a single empty chunk so callers always evaluate something.
func ChunkText(text string, size, overlap int) []string {
	if text == "" {
		return []string{""}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}
	if size <= 0 {
		size = len(words)
	}
	step := size - overlap
	if step < 1 {
		step = 1
	}

	chunks := make([]string, 0, len(words)/step+1)
	for start := 0; start < len(words); start += step {
		end := min(start+size, len(words))
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
