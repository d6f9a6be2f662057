package llm

// extractJSON attempts to extract JSON from a string that may contain
// markdown formatting.
func extractJSON(s string) string {
	// Try to find ```json ... ``` block
	if body, ok := fencedBlock(s, "```json"); ok {
		return body
	}

	// Try to find ``` ... ``` block (plain code block)
	if body, ok := fencedBlock(s, "```"); ok {
		return body
	}

	// Try to find raw JSON (starts with { or [)
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			depth := 0
			for j := i; j < len(s); j++ {
				switch s[j] {
				case '{', '[':
					depth++
				case '}', ']':
					depth--
					if depth == 0 {
						return s[i : j+1]
					}
				}
			}
		}
	}

	return s
}

// fencedBlock returns the body of the first code fence opened by marker.
func fencedBlock(s, marker string) (string, bool) {
	idx := indexOf(s, marker)
	if idx == -1 {
		return "", false
	}
	start := idx + len(marker)
	for start < len(s) && (s[start] == '\n' || s[start] == '\r') {
		start++
	}
	end := indexOf(s[start:], "```")
	if end == -1 {
		return "", false
	}
	body := s[start : start+end]
	for len(body) > 0 && (body[len(body)-1] == '\n' || body[len(body)-1] == '\r') {
		body = body[:len(body)-1]
	}
	return body, true
}

// indexOf returns the index of the first occurrence of substr in s, or -1.
func indexOf(s, substr string) int {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
