package token

// Tokenize scans d and returns its tokens in document order.
func Tokenize(dst []Token, d []byte) []Token {
	posDoc := NewPosDoc(d)
	var (
		capturing bool
		buf       []byte
		start     int
	)
	for i, c := range d {
		switch c {
		case '<':
			if !capturing {
				start = i
			}
			capturing = true
			continue
		case '>', '/':
			if len(buf) != 0 {
				dst = append(dst, newToken(buf, posDoc.Pos(start), posDoc.Pos(i)))
			}
			capturing = false
			buf = buf[:0]
			continue
		}
		if capturing {
			buf = append(buf, c)
		}
	}
	if len(buf) != 0 {
		t := newToken(buf, posDoc.Pos(start), posDoc.end())
		t.Type = TUnterminated
		dst = append(dst, t)
	}
	return dst
}
