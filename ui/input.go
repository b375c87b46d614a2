package ui

import "strings"

// decodeInput splits raw terminal bytes into key names: letters, "up",
// "down", "left", "right", "esc" and "ctrl+c". Unknown sequences are
// dropped.
func decodeInput(data []byte) []string {
	var names []string
	for i := 0; i < len(data); {
		b := data[i]

		if b == 0x1b { // ESC
			name, consumed := parseEscapeSequence(data[i:])
			if name != "" {
				names = append(names, name)
			}
			i += consumed
			continue
		}

		switch {
		case b == 0x03:
			names = append(names, "ctrl+c")
		case b >= 0x20 && b < 0x7f:
			names = append(names, strings.ToLower(string(rune(b))))
		}
		i++
	}
	return names
}

// parseEscapeSequence handles CSI (ESC [) and SS3 (ESC O) arrow keys.
// Returns the key name and the number of bytes consumed.
func parseEscapeSequence(seq []byte) (string, int) {
	if len(seq) < 2 {
		return "esc", 1
	}
	if seq[1] != '[' && seq[1] != 'O' {
		return "esc", 1
	}
	if len(seq) < 3 {
		return "", len(seq)
	}

	// Skip parameters such as the modifier in ESC [ 1 ; 5 A.
	end := 2
	for end < len(seq) && (seq[end] >= '0' && seq[end] <= '9' || seq[end] == ';') {
		end++
	}
	if end == len(seq) {
		return "", len(seq)
	}

	switch seq[end] {
	case 'A':
		return "up", end + 1
	case 'B':
		return "down", end + 1
	case 'C':
		return "right", end + 1
	case 'D':
		return "left", end + 1
	}
	return "", end + 1
}
