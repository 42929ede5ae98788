package toolchain

import (
	"regexp"
	"strconv"
	"strings"
)

var segmentRe = regexp.MustCompile(`^([0-9]+)([0-9a-zA-Z-]*)$`)

type segment struct {
	num    int
	suffix string
}

// Version is a parsed build-tools directory name, totally ordered so the
// newest install can be picked deterministically. Directory names that do
// not parse are not versions at all and never enter the candidate set.
type Version struct {
	raw      string
	segments []segment
}

// ParseVersion parses a dot-separated version like "33.0.2" or
// "31.0.0-rc1". The second return is false for names that are not
// versions.
func ParseVersion(s string) (Version, bool) {
	if s == "" {
		return Version{}, false
	}
	parts := strings.Split(s, ".")
	segs := make([]segment, 0, len(parts))
	for _, part := range parts {
		m := segmentRe.FindStringSubmatch(part)
		if m == nil {
			return Version{}, false
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Version{}, false
		}
		segs = append(segs, segment{num: n, suffix: m[2]})
	}
	return Version{raw: s, segments: segs}, true
}

func (v Version) String() string { return v.raw }

// Less orders versions component-wise; a missing trailing component is
// lower than any present one, and within a component the numeric part
// wins before the suffix is compared as a plain string.
func (v Version) Less(o Version) bool {
	for i := 0; i < len(v.segments) && i < len(o.segments); i++ {
		a, b := v.segments[i], o.segments[i]
		if a.num != b.num {
			return a.num < b.num
		}
		if a.suffix != b.suffix {
			return a.suffix < b.suffix
		}
	}
	return len(v.segments) < len(o.segments)
}
