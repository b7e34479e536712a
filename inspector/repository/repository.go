package repository

// Project represents information about a detected rule package
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Type         string // Marker kind: pyproject, setuptools, git or unknown
	Name         string // Name of the project (extracted from config files)
	RelativePath string // Path from project root to the specified file
}
