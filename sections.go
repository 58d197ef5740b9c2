package taxform

// A sectionMarker recognizes the heading line that opens a named document
// section.
type sectionMarker struct {
	name  string
	match func(line string) bool
}

// A section is a contiguous span of document lines: the heading that opened
// it, and every line up to the next heading.
type section struct {
	name   string
	header string
	lines  []string
}

// splitSections partitions document lines into the spans opened by each
// marker. Markers are positional: the documents print their sections in a
// fixed order, so once a marker has matched only the markers after it can
// open the next section. Lines before the first heading are dropped.
func splitSections(lines []string, markers []sectionMarker) []section {
	var out []section
	armed := 0 // markers[armed:] can still open a section
	open := -1 // index in out of the section collecting lines
	for _, line := range lines {
		if i := matchMarker(line, markers[armed:]); i >= 0 {
			out = append(out, section{name: markers[armed+i].name, header: line})
			open = len(out) - 1
			armed += i + 1
			continue
		}
		if open >= 0 {
			out[open].lines = append(out[open].lines, line)
		}
	}
	return out
}

func matchMarker(line string, markers []sectionMarker) int {
	for i, m := range markers {
		if m.match(line) {
			return i
		}
	}
	return -1
}
