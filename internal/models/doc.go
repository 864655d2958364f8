package models

// Tag is a free-form documentation tag such as @author or @since.
type Tag struct {
	Name  string `json:"name"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

// Doc is a documentation block. Params, Return and Throws mirror the owning
// method's signature and are filled by ForMethod rather than authored.
type Doc struct {
	Title       string      `json:"title,omitempty"`
	Description []string    `json:"description,omitempty"`
	Deprecated  string      `json:"deprecated,omitempty"`
	Params      []Parameter `json:"-"`
	Return      *Return     `json:"-"`
	Throws      []Exception `json:"-"`
	Tags        []Tag       `json:"tags,omitempty"`
}

// IsEmpty reports whether rendering the doc would produce no content.
func (d *Doc) IsEmpty() bool {
	if d == nil {
		return true
	}
	return d.Title == "" && len(d.Description) == 0 && d.Deprecated == "" &&
		len(d.Params) == 0 && d.Return == nil && len(d.Throws) == 0 && len(d.Tags) == 0
}

// ForMethod returns a copy of the doc carrying the method's parameters,
// result and throw list. The receiver is never modified and may be nil.
func (d *Doc) ForMethod(m *Method) *Doc {
	view := &Doc{}
	if d != nil {
		view.Title = d.Title
		view.Description = append([]string(nil), d.Description...)
		view.Deprecated = d.Deprecated
		view.Tags = append([]Tag(nil), d.Tags...)
	}
	view.Params = append([]Parameter(nil), m.Parameters...)
	if m.Return != nil && !m.Constructor {
		r := *m.Return
		view.Return = &r
	}
	view.Throws = append([]Exception(nil), m.Throws...)
	return view
}

// Lines returns the title and description lines in order.
func (d *Doc) Lines() []string {
	if d == nil {
		return nil
	}
	var lines []string
	if d.Title != "" {
		lines = append(lines, d.Title)
	}
	if d.Title != "" && len(d.Description) > 0 {
		lines = append(lines, "")
	}
	lines = append(lines, d.Description...)
	return lines
}
