package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceImage is one input image: a filename unique within the batch plus
// its raw bytes. Read-only once created.
type SourceImage struct {
	Name string
	Data []byte
}

var validExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// LoadDir reads every supported image file from dir, sorted by filename.
// It errors when dir is missing, not a directory, or holds no images.
func LoadDir(dir string) ([]SourceImage, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("image directory not found: %s", dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat image directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	var images []SourceImage
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !validExtensions[ext] {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read image %s: %w", entry.Name(), err)
		}
		images = append(images, SourceImage{Name: entry.Name(), Data: data})
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("no valid images found in %s. Supported formats: PNG, JPG, JPEG", dir)
	}

	sort.Slice(images, func(i, j int) bool { return images[i].Name < images[j].Name })
	return images, nil
}
