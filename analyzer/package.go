package analyzer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/ruleinspect/inspector/graph"
	"github.com/viant/ruleinspect/inspector/python"
)

// AnalyzeDir walks a directory tree and analyses every matched python file in lexical path order.
// The walk stops at the first failing file. A file root is analyzed on its own.
func (a *Analyzer) AnalyzeDir(ctx context.Context, root string) (*graph.Package, error) {
	object, err := a.fs.Object(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", python.ErrFileAccess, root, err)
	}
	pkg := &graph.Package{Name: path.Base(strings.TrimRight(root, "/")), Root: root}
	if !object.IsDir() {
		file, err := a.analyzeFile(ctx, root, root)
		if file != nil {
			pkg.AddFile(file)
		}
		return pkg, err
	}

	var files []string
	var onVisit storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if !a.match(info) {
			return !info.IsDir(), nil
		}
		if info.IsDir() {
			return true, nil
		}
		files = append(files, path.Join(parent, info.Name()))
		return true, nil
	}
	if err = a.fs.Walk(ctx, root, onVisit); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	sort.Strings(files)

	for _, relative := range files {
		file, err := a.analyzeFile(ctx, url.Join(root, relative), relative)
		if file != nil {
			pkg.AddFile(file)
		}
		if err != nil {
			return pkg, err
		}
	}
	a.logger.WithField("package", pkg.Name).WithField("files", len(pkg.FileSet)).Debug("inspected directory")
	return pkg, nil
}
