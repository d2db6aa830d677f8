package content

// CollapsedEducation is how many education entries show before "show more".
const CollapsedEducation = 2

// Wrap maps any index onto [0, n), wrapping in both directions.
// It returns 0 when n is 0.
func Wrap(index, n int) int {
	if n <= 0 {
		return 0
	}
	index %= n
	if index < 0 {
		index += n
	}
	return index
}

// Slide is one carousel position.
type Slide struct {
	Project Project
	Index   int
	Prev    int
	Next    int
	Total   int
}

// Slide returns the project at index (wrapped) and its neighbours.
// ok is false when there are no projects.
func (c *Content) Slide(index int) (s Slide, ok bool) {
	n := len(c.Projects)
	if n == 0 {
		return Slide{}, false
	}
	i := Wrap(index, n)
	return Slide{
		Project: c.Projects[i],
		Index:   i,
		Prev:    Wrap(i-1, n),
		Next:    Wrap(i+1, n),
		Total:   n,
	}, true
}

// EducationView is the education list in its collapsed or expanded state.
type EducationView struct {
	Entries  []Entry
	Expanded bool
	Hidden   int // entries not shown while collapsed
}

// EducationView returns the education list, trimmed to CollapsedEducation
// entries unless expanded.
func (c *Content) EducationView(expanded bool) EducationView {
	if expanded || len(c.Education) <= CollapsedEducation {
		return EducationView{Entries: c.Education, Expanded: expanded}
	}
	return EducationView{
		Entries: c.Education[:CollapsedEducation],
		Hidden:  len(c.Education) - CollapsedEducation,
	}
}
