package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// GoModParser reads module paths from go.mod files
type GoModParser struct {
	fileReader *FileReader
}

// NewGoModParser creates a parser sharing fileReader's cache
func NewGoModParser(fileReader *FileReader) *GoModParser {
	return &GoModParser{fileReader: fileReader}
}

// ParseModuleName returns the module path declared in goModPath
func (p *GoModParser) ParseModuleName(goModPath string) (string, error) {
	content, err := p.fileReader.ReadFile(goModPath)
	if err != nil {
		return "", err
	}

	modFile, err := modfile.ParseLax(goModPath, content, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", goModPath, err)
	}
	if modFile.Module == nil {
		return "", fmt.Errorf("no module declaration found in %s", goModPath)
	}
	return modFile.Module.Mod.Path, nil
}

// FindGoModFile returns the nearest go.mod at or above startDir
func (p *GoModParser) FindGoModFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "go.mod")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", startDir)
		}
		dir = parent
	}
}

// ModuleRoot returns the directory and module path of the module containing
// dir.
func (p *GoModParser) ModuleRoot(dir string) (root, modulePath string, err error) {
	goMod, err := p.FindGoModFile(dir)
	if err != nil {
		return "", "", err
	}
	modulePath, err = p.ParseModuleName(goMod)
	if err != nil {
		return "", "", err
	}
	return filepath.Dir(goMod), modulePath, nil
}
