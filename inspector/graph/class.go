package graph

// Kind classifies a class by its first declared base
type Kind string

const (
	KindEnum     Kind = "Enum"
	KindVariable Kind = "Variable"
	KindNone     Kind = ""
)

// Location of a declaration in the source code
type Location struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
	Start  int `yaml:"start"`
	End    int `yaml:"end"`
}

// EnumMember is a named string value of an Enum classified class
type EnumMember struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Class holds facts extracted from one class declaration
type Class struct {
	Name      string        `yaml:"name"`
	Kind      Kind          `yaml:"kind,omitempty"`
	Base      string        `yaml:"base,omitempty"`   // first base name
	Parent    string        `yaml:"parent,omitempty"` // enclosing class, if any
	Decorated bool          `yaml:"decorated,omitempty"`
	Members   []*EnumMember `yaml:"members,omitempty"`
	Labels    []string      `yaml:"labels,omitempty"`
	Formulas  []string      `yaml:"formulas,omitempty"` // function definitions of a Variable
	Location  *Location     `yaml:"location,omitempty"`

	memberMap map[string]int
}

// AddMember adds an enum member
func (c *Class) AddMember(member *EnumMember) {
	if c.memberMap == nil {
		c.memberMap = make(map[string]int)
	}
	c.Members = append(c.Members, member)
	c.memberMap[member.Name] = len(c.Members) - 1
}

// LookupMember retrieves the last member bound to name
func (c *Class) LookupMember(name string) *EnumMember {
	if idx, ok := c.memberMap[name]; ok && idx < len(c.Members) {
		return c.Members[idx]
	}
	return nil
}

// Label returns the first reported label
func (c *Class) Label() string {
	if len(c.Labels) == 0 {
		return ""
	}
	return c.Labels[0]
}

// IsComputed reports whether a Variable declares at least one formula
func (c *Class) IsComputed() bool {
	return len(c.Formulas) > 0
}
