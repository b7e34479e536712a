package graph

// Emitter receives extraction events in traversal order.
// Events are delivered as soon as they are known so that a failing traversal keeps what was emitted.
type Emitter interface {
	BeginFile(file *File) error
	BeginClass(class *Class) error
	EmitKind(class *Class) error
	EmitMember(class *Class, member *EnumMember) error
	EmitLabel(class *Class, label string) error
	EmitFormula(class *Class, name string) error
	EndFile(file *File) error
}
