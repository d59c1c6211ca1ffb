package mapping

// TableFile is the YAML document holding one or more described tables.
type TableFile struct {
	// Version of the table document format.
	Version string `yaml:"version,omitempty"`

	// Tables is the list of described schema tables.
	Tables []Table `yaml:"tables"`
}

// Table is the plain-data description of a Schema.
type Table struct {
	Name   string       `yaml:"name"`
	Case   string       `yaml:"case"`
	Fields []Descriptor `yaml:"fields"`
}

// Descriptor is one row of a Table.
type Descriptor struct {
	Target   string   `yaml:"target"`
	Source   string   `yaml:"source"`
	Coercion Coercion `yaml:"coercion,omitempty"`
	Nesting  Nesting  `yaml:"nesting,omitempty"`
	Nested   string   `yaml:"nested,omitempty"`
}

// Describe returns the table as plain data.
func (s *Schema[T]) Describe() Table {
	t := Table{
		Name:   s.Name,
		Case:   s.Case.String(),
		Fields: make([]Descriptor, 0, len(s.Fields)),
	}

	for _, f := range s.Fields {
		t.Fields = append(t.Fields, Descriptor{
			Target:   f.Target,
			Source:   f.Source,
			Coercion: f.Coercion,
			Nesting:  f.Nesting,
			Nested:   f.Nested(),
		})
	}

	return t
}

// Targets returns the target names in table order.
func (t Table) Targets() []string {
	out := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		out[i] = f.Target
	}

	return out
}

// Lookup returns the descriptor for a target field.
func (t Table) Lookup(target string) (Descriptor, bool) {
	for _, f := range t.Fields {
		if f.Target == target {
			return f, true
		}
	}

	return Descriptor{}, false
}
