package domain

// SniffSize is the number of leading bytes inspected by LooksBinary.
const SniffSize = 8 << 10

// maxControlRatio is the share of disallowed control bytes above which a
// sample without NUL bytes is still treated as binary.
const maxControlRatio = 0.3

// LooksBinary classifies a content sample. A NUL byte anywhere means
// binary; otherwise the sample is binary when more than 30% of its bytes
// are C0 control characters other than common whitespace, backspace and
// ESC. Bytes >= 0x80 are never counted: they are UTF-8 or already
// replaced by the decoder.
func LooksBinary(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}

	control := 0

	for _, b := range sample {
		switch {
		case b == 0:
			return true
		case b == '\t', b == '\n', b == '\v', b == '\f', b == '\r', b == '\b', b == 0x1b:
		case b < 0x20, b == 0x7f:
			control++
		}
	}

	return float64(control)/float64(len(sample)) > maxControlRatio
}
