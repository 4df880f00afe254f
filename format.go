package structpack

// Format string traversal. One walk serves size computation, decoding,
// and encoding; callers differ only in the visitor they pass.

// visitFunc is called once per field occurrence. off is the absolute,
// aligned cursor position; length is the element size for scalar codes
// and the declared byte span for text codes. Returning an error aborts
// the walk.
type visitFunc func(code byte, e entry, off, length int) error

// selectRegistry resolves the leading byte-order prefix. Only the five
// prefix characters consume a character; anything else falls through to
// the native registry with the full string intact.
func (t *tables) selectRegistry(format string) (registry, string) {
	if len(format) == 0 {
		return t.native, format
	}
	switch format[0] {
	case '<':
		return t.little, format[1:]
	case '>', '!':
		return t.big, format[1:]
	case '=':
		if t.host.LittleEndian {
			return t.little, format[1:]
		}
		return t.big, format[1:]
	case '@':
		return t.native, format[1:]
	default:
		return t.native, format
	}
}

// walk traverses format starting the cursor at start and returns the
// number of bytes the format spans. Decimal digits accumulate into a
// pending repeat count; unrecognized characters are skipped and swallow
// any pending count; recognized codes are aligned, sized, and visited.
func (t *tables) walk(format string, start int, visit visitFunc) (int, error) {
	reg, body := t.selectRegistry(format)
	pos := start
	count := -1 // -1: no count given
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch >= '0' && ch <= '9' {
			if count < 0 {
				count = 0
			}
			count = count*10 + int(ch-'0')
			continue
		}
		e, ok := reg[ch]
		if !ok {
			count = -1
			continue
		}
		if e.align > 1 {
			pos = alignUp(pos, e.align)
		}
		switch ch {
		case 's', 'p':
			// The count is the field's byte span, consumed as one
			// field. s defaults to zero length, p to the bare
			// prefix byte.
			length := count
			if length < 0 {
				if ch == 'p' {
					length = 1
				} else {
					length = 0
				}
			}
			debugf("walk: %c span=%d off=%d", ch, length, pos)
			if visit != nil {
				if err := visit(ch, e, pos, length); err != nil {
					return 0, err
				}
			}
			pos += length
		default:
			n := count
			if n < 0 {
				n = 1
			}
			debugf("walk: %c x%d size=%d off=%d", ch, n, e.size, pos)
			for ; n > 0; n-- {
				if visit != nil {
					if err := visit(ch, e, pos, e.size); err != nil {
						return 0, err
					}
				}
				pos += e.size
			}
		}
		count = -1
	}
	return pos - start, nil
}

// alignUp rounds pos up to the next multiple of align. Never rounds down.
func alignUp(pos, align int) int {
	if rem := pos % align; rem != 0 {
		pos += align - rem
	}
	return pos
}
