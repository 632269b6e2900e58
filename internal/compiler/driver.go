package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CompileAndWrite reads an .easy source file, compiles it under the given
// profile, and writes the generated Python to outDir/<name>.py. It returns
// the path of the written file.
func CompileAndWrite(srcPath, outDir string, profile Profile) (string, error) {
	if err := validateExtension(srcPath); err != nil {
		return "", err
	}

	source, err := readSource(srcPath)
	if err != nil {
		return "", err
	}

	code, err := New(profile).Compile(source)
	if err != nil {
		return "", err
	}

	return writeOutput(code, srcPath, outDir)
}

func validateExtension(path string) error {
	if filepath.Ext(path) != ".easy" {
		return fmt.Errorf("source must have .easy extension")
	}
	return nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

func writeOutput(code, srcPath, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	outFile := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(srcPath), ".easy")+".py")
	return outFile, os.WriteFile(outFile, []byte(code), 0o644)
}
