package gen

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"driver-generator/internal/element"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return errors.Wrapf(err, "writing file %s", file.Filename)
		}
	}

	return nil
}

// DirHost stores generated code in a directory and keeps the line
// correlations of each file in memory.
type DirHost struct {
	dir     string
	code    map[string][]byte
	selects map[string][]LineSelect
}

// NewDirHost creates a DirHost writing into dir.
func NewDirHost(dir string) *DirHost {
	return &DirHost{
		dir:     dir,
		code:    make(map[string][]byte),
		selects: make(map[string][]LineSelect),
	}
}

// AddCode writes code to fileName, replacing the correlations recorded for it.
func (h *DirHost) AddCode(fileName string, code []byte, _ *element.Node) error {
	if filepath.Base(fileName) != fileName {
		return errors.Newf("file name %q must not contain a directory", fileName)
	}

	err := WriteFiles([]GeneratedFile{{Filename: fileName, Content: code}}, h.dir)
	if err != nil {
		return err
	}

	h.code[fileName] = code
	delete(h.selects, fileName)

	return nil
}

// AddCodeLineSelectInfo records that identify in fileName accesses elem.
func (h *DirHost) AddCodeLineSelectInfo(fileName, identify string, elem *element.Node) {
	h.selects[fileName] = append(h.selects[fileName], LineSelect{
		Identify: identify,
		Element:  elem,
		Line:     lineOf(h.code[fileName], "=> "+identify+";"),
	})
}

// LineSelects returns the correlations recorded for fileName.
func (h *DirHost) LineSelects(fileName string) []LineSelect {
	return h.selects[fileName]
}
