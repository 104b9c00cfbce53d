package saw

import (
	"strconv"
	"strings"
)

// sanitizeName rewrites name into a string safe to use as a path
// component on both POSIX and Windows filesystems: only letters,
// digits, '.', '_', and '-' survive; everything else becomes '_', and a
// result of "." or ".." becomes "_". Windows reserved device names (such
// as CON or NUL) and trailing dots are not rewritten.
// Mirrors the original writer's folder-name sanitization.
func sanitizeName(name string) string {
	if name == "" {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	sanitized := b.String()
	if sanitized == "" || sanitized == "." || sanitized == ".." {
		return "_"
	}
	return sanitized
}

// columnID derives a column's stable, filesystem-safe file id from its
// position and display name: a monotonic index disambiguates columns
// that sanitize to the same name, and the sanitized name keeps the
// directory listing human-readable. The scheme is stable across repeated
// saves of the same table, since it depends only on column order and
// name, not on any generated timestamp or counter.
func columnID(index int, name string) string {
	return strconv.Itoa(index) + "_" + sanitizeName(name)
}
