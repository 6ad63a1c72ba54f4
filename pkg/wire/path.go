package wire

// PathSegTag identifies the kind of a single PathSeg.
type PathSegTag uint8

const (
	// PathSegTagSegment carries a NUL-terminated name component.
	PathSegTagSegment PathSegTag = 0x01
	// PathSegTagRoot marks the root of an absolute path; carries no bytes.
	PathSegTagRoot PathSegTag = 0x10
)

// PathSeg is one component of a Path: either the root marker or a named
// segment.
type PathSeg struct {
	Tag  PathSegTag
	Name []byte // NUL-terminated on the wire (terminator excluded here), Tag == PathSegTagSegment
}

// DecodePathSeg decodes one PathSeg from the start of buf.
func DecodePathSeg(buf []byte) (PathSeg, int, error) {
	if len(buf) < 1 {
		return PathSeg{}, 0, errShort("PathSeg", 1, len(buf))
	}
	tag := PathSegTag(buf[0])
	switch tag {
	case PathSegTagRoot:
		return PathSeg{Tag: tag}, 1, nil
	case PathSegTagSegment:
		nul := indexByte(buf[1:], 0)
		if nul < 0 {
			return PathSeg{}, 0, newCorrupt("PathSeg.Segment: missing NUL terminator")
		}
		return PathSeg{Tag: tag, Name: buf[1 : 1+nul]}, 1 + nul + 1, nil
	default:
		return PathSeg{}, 0, newCorrupt("PathSeg: unrecognized tag byte")
	}
}

// Encode appends the on-wire bytes of s to dst.
func (s PathSeg) Encode(dst []byte) []byte {
	dst = append(dst, byte(s.Tag))
	if s.Tag == PathSegTagSegment {
		dst = append(dst, s.Name...)
		dst = append(dst, 0)
	}
	return dst
}

// Path is an ordered sequence of PathSeg values.
type Path struct {
	Segments []PathSeg
}

// DecodePath decodes a Path (segcount:u32 followed by that many PathSeg
// values) from the start of buf.
func DecodePath(buf []byte) (Path, int, error) {
	if len(buf) < 4 {
		return Path{}, 0, errShort("Path.segcount", 4, len(buf))
	}
	count := getU32(buf[0:4])
	n := 4
	segs := make([]PathSeg, 0, count)
	for i := uint32(0); i < count; i++ {
		seg, consumed, err := DecodePathSeg(buf[n:])
		if err != nil {
			return Path{}, 0, err
		}
		segs = append(segs, seg)
		n += consumed
	}
	return Path{Segments: segs}, n, nil
}

// Encode appends the on-wire bytes of p to dst.
func (p Path) Encode(dst []byte) []byte {
	dst = putU32(dst, uint32(len(p.Segments)))
	for _, s := range p.Segments {
		dst = s.Encode(dst)
	}
	return dst
}

// String renders the path as a "/"-joined string for diagnostics. The Root
// tag contributes a single leading "/".
func (p Path) String() string {
	var out []byte
	for _, s := range p.Segments {
		switch s.Tag {
		case PathSegTagRoot:
			out = append(out, '/')
		case PathSegTagSegment:
			if len(out) > 0 && out[len(out)-1] != '/' {
				out = append(out, '/')
			}
			out = append(out, s.Name...)
		}
	}
	return string(out)
}
