package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ruleinspect/inspector/repository"
)

func TestDetector_DetectProject(t *testing.T) {
	tests := []struct {
		description string
		marker      string
		content     string
		expectType  string
		expectName  string
	}{
		{
			description: "pyproject project table",
			marker:      "pyproject.toml",
			content:     "[project]\nname = \"openfisca-yuisekin\"\nversion = \"0.0.1\"\n",
			expectType:  repository.TypePyProject,
			expectName:  "openfisca-yuisekin",
		},
		{
			description: "pyproject poetry table",
			marker:      "pyproject.toml",
			content:     "[tool.poetry]\nname = \"poetry-rules\"\n",
			expectType:  repository.TypePyProject,
			expectName:  "poetry-rules",
		},
		{
			description: "setup.py",
			marker:      "setup.py",
			content:     "from setuptools import setup\n\nsetup(\n    name=\"OpenFisca-Yuisekin\",\n    version=\"1.0\",\n)\n",
			expectType:  repository.TypeSetuptools,
			expectName:  "OpenFisca-Yuisekin",
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			root := t.TempDir()
			variables := filepath.Join(root, "openfisca_yuisekin", "variables")
			assert.NoError(t, os.MkdirAll(variables, 0755))
			assert.NoError(t, os.WriteFile(filepath.Join(root, tc.marker), []byte(tc.content), 0644))
			rule := filepath.Join(variables, "人口.py")
			assert.NoError(t, os.WriteFile(rule, []byte("x = 1\n"), 0644))

			project, err := repository.New().DetectProject(rule)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tc.expectType, project.Type)
			assert.Equal(t, tc.expectName, project.Name)
			assert.Equal(t, "openfisca_yuisekin/variables/人口.py", project.RelativePath)
		})
	}
}

func TestDetector_DetectProject_Missing(t *testing.T) {
	_, err := repository.New().DetectProject(filepath.Join(t.TempDir(), "missing.py"))
	assert.Error(t, err)
}
