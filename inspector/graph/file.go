package graph

// File represents an inspected source file with its classes in traversal order
type File struct {
	Path    string   `yaml:"path"`
	Hash    uint64   `yaml:"hash"`
	Classes []*Class `yaml:"classes,omitempty"`

	classMap map[string]int
}

// Package represents a directory of inspected files
type Package struct {
	Name    string  `yaml:"name,omitempty"`
	Root    string  `yaml:"root"`
	FileSet []*File `yaml:"files,omitempty"`

	fileMap map[string]int
}

// AddClass appends a class; the first declaration wins name lookups
func (f *File) AddClass(class *Class) {
	if f.classMap == nil {
		f.classMap = make(map[string]int)
	}
	f.Classes = append(f.Classes, class)
	if _, ok := f.classMap[class.Name]; !ok {
		f.classMap[class.Name] = len(f.Classes) - 1
	}
}

// LookupClass retrieves a class by name from the file
func (f *File) LookupClass(name string) *Class {
	if idx, ok := f.classMap[name]; ok && idx < len(f.Classes) {
		return f.Classes[idx]
	}
	return nil
}

// ClassesOf returns classes of the given kind
func (f *File) ClassesOf(kind Kind) []*Class {
	var result []*Class
	for _, class := range f.Classes {
		if class.Kind == kind {
			result = append(result, class)
		}
	}
	return result
}

func (p *Package) AddFile(file *File) {
	if p.fileMap == nil {
		p.fileMap = make(map[string]int)
	}
	p.FileSet = append(p.FileSet, file)
	p.fileMap[file.Path] = len(p.FileSet) - 1
}

// LookupFile retrieves a file by its path
func (p *Package) LookupFile(path string) *File {
	if idx, ok := p.fileMap[path]; ok && idx < len(p.FileSet) {
		return p.FileSet[idx]
	}
	return nil
}
