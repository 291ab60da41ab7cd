package codepath

import (
	"strconv"
	"strings"
)

type (
	// Path is an immutable breadcrumb trail locating a point inside a pair of
	// trees being compared. Each append operation returns a new Path that
	// shares its prefix with the parent, so extending a path is O(1) and
	// sibling branches never observe each other's segments.
	//
	// Paths render to a human-readable locator used in diagnostics:
	//
	//	p := codepath.Root().Field("classes").Key("Foo").Field("methods").Key("bar")
	//	fmt.Println(p) // classes[Foo].methods[bar]
	Path struct {
		parent  *Path
		segment segment
	}

	segment struct {
		kind segmentKind
		name string
		idx  int
	}

	segmentKind int
)

const (
	rootSegment segmentKind = iota
	fieldSegment
	indexSegment
	keySegment
	qualifierSegment
)

var root = &Path{}

// Root returns the empty path. All traversals start here.
func Root() *Path {
	return root
}

// Field returns a new path with a static field segment appended, e.g. the
// name of a struct field or sub-collection ("classes", "methods").
func (p *Path) Field(name string) *Path {
	return &Path{parent: p, segment: segment{kind: fieldSegment, name: name}}
}

// Index returns a new path with a zero-based position segment appended, used
// when descending into an ordered sequence.
func (p *Path) Index(i int) *Path {
	return &Path{parent: p, segment: segment{kind: indexSegment, idx: i}}
}

// Key returns a new path with a key segment appended, used when descending
// into an entry of a keyed collection.
func (p *Path) Key(name string) *Path {
	return &Path{parent: p, segment: segment{kind: keySegment, name: name}}
}

// Qualified returns a new path with a free-form qualifier appended, e.g. to
// mark that an optional value was dereferenced before recursing.
func (p *Path) Qualified(note string) *Path {
	return &Path{parent: p, segment: segment{kind: qualifierSegment, name: note}}
}

// String renders the path in canonical form: field and qualifier segments as
// ".name", index segments as "[i]", and key segments as "[name]". The leading
// dot is omitted so a path starting with a field reads naturally
// ("classes[Foo].methods[bar].params[3]").
func (p *Path) String() string {
	var sb strings.Builder
	p.render(&sb)
	return sb.String()
}

func (p *Path) render(sb *strings.Builder) {
	if p.parent != nil {
		p.parent.render(sb)
	}

	switch p.segment.kind {
	case rootSegment:
	case fieldSegment, qualifierSegment:
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(p.segment.name)
	case indexSegment:
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(p.segment.idx))
		sb.WriteByte(']')
	case keySegment:
		sb.WriteByte('[')
		sb.WriteString(p.segment.name)
		sb.WriteByte(']')
	}
}
