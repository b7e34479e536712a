package repository

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

const (
	TypePyProject  = "pyproject"
	TypeSetuptools = "setuptools"
	TypeGit        = "git"
	TypeUnknown    = "unknown"
)

// Detector identifies the root of the python package that holds a rule file
type Detector struct {
	markers []string
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		markers: []string{
			"pyproject.toml",
			"setup.py",
			"setup.cfg",
			".git",
		},
	}
}

// DetectProject identifies the project root for the given path and returns project info
func (d *Detector) DetectProject(filePath string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	info := &Project{Type: TypeUnknown, RootPath: startDir, Name: filepath.Base(startDir)}
	if rootPath, projectType := d.findProjectRoot(startDir); rootPath != "" {
		info.RootPath = rootPath
		info.Type = projectType
		info.Name = extractProjectName(rootPath, projectType)
	}

	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)
	return info, nil
}

// findProjectRoot searches up from the start directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, determineProjectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

func determineProjectType(marker string) string {
	switch marker {
	case "pyproject.toml":
		return TypePyProject
	case "setup.py", "setup.cfg":
		return TypeSetuptools
	case ".git":
		return TypeGit
	}
	return TypeUnknown
}

func extractProjectName(rootPath string, projectType string) string {
	switch projectType {
	case TypePyProject:
		if name := extractPyProjectName(filepath.Join(rootPath, "pyproject.toml")); name != "" {
			return name
		}
	case TypeSetuptools:
		if name := extractSetuptoolsName(rootPath); name != "" {
			return name
		}
	}
	return filepath.Base(rootPath)
}

type pyProject struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name string `toml:"name"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func extractPyProjectName(pyprojectPath string) string {
	var doc pyProject
	if _, err := toml.DecodeFile(pyprojectPath, &doc); err != nil {
		return ""
	}
	if doc.Project.Name != "" {
		return doc.Project.Name
	}
	return doc.Tool.Poetry.Name
}

var setupNameRegex = regexp.MustCompile(`(?m)^\s*name\s*=\s*["']?([^"',\s]+)`)

func extractSetuptoolsName(rootPath string) string {
	for _, candidate := range []string{"setup.py", "setup.cfg"} {
		data, err := os.ReadFile(filepath.Join(rootPath, candidate))
		if err != nil {
			continue
		}
		if matches := setupNameRegex.FindSubmatch(data); len(matches) >= 2 {
			return string(matches[1])
		}
	}
	return ""
}
