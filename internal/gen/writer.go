package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes one generated file below outputDir, creating any missing
// parent directories, and returns the path written.
func WriteFile(file *GeneratedFile, outputDir string) (string, error) {
	outputPath := filepath.Join(outputDir, filepath.FromSlash(file.Filename))

	err := os.MkdirAll(filepath.Dir(outputPath), dirPerm)
	if err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	err = os.WriteFile(outputPath, file.Content, filePerm)
	if err != nil {
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	return outputPath, nil
}

// WriteFiles writes all generated files to the output directory.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	for i := range files {
		if _, err := WriteFile(&files[i], outputDir); err != nil {
			return err
		}
	}

	return nil
}
