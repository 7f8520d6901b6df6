package guidoc

import (
	"os"
	"path/filepath"
	"slices"
)

// DumpExt is the extension used for dumped layout sources.
const DumpExt = ".guidoc"

// Dump writes each layout's original spec text to <label>.guidoc under
// dir, with the label used verbatim as the base filename. It returns the
// paths written, in label order.
func Dump(dir string, layouts map[string]string) ([]string, error) {
	var files []string
	labels := make([]string, 0, len(layouts))
	for label := range layouts {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	for _, label := range labels {
		path := filepath.Join(dir, label+DumpExt)
		if err := os.WriteFile(path, []byte(layouts[label]), 0o644); err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}
