package format

// Append copies template into dst, replacing each "%s" with the next entry of
// args, and returns the extended slice. At most limit bytes are appended; the
// output is cut silently once the limit is reached. A non-positive limit
// appends nothing.
func Append(dst []byte, limit int, template string, args ...string) []byte {
	if limit <= 0 {
		return dst
	}

	end := len(dst) + limit
	next := 0

	for i := 0; i < len(template) && len(dst) < end; {
		if template[i] == '%' && i+1 < len(template) && template[i+1] == 's' && next < len(args) {
			dst = appendBounded(dst, end, args[next])
			next++
			i += 2
			continue
		}
		dst = append(dst, template[i])
		i++
	}

	return dst
}

// Written reports how many bytes Append would produce for the given inputs
// without writing anything.
func Written(limit int, template string, args ...string) int {
	if limit <= 0 {
		return 0
	}

	n := 0
	next := 0
	for i := 0; i < len(template) && n < limit; {
		if template[i] == '%' && i+1 < len(template) && template[i+1] == 's' && next < len(args) {
			n += min(len(args[next]), limit-n)
			next++
			i += 2
			continue
		}
		n++
		i++
	}
	return n
}

func appendBounded(dst []byte, end int, s string) []byte {
	room := end - len(dst)
	if len(s) > room {
		s = s[:room]
	}
	return append(dst, s...)
}
