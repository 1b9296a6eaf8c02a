package badge

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"

	"badge-life/internal/life"
)

// NameBadgeFile is the dedicated name-badge image; the slideshow never
// shows it in rotation.
const NameBadgeFile = "tufty-name.png"

// Slideshow cycles through the PNG images of a pictures directory. When
// the directory is missing or holds no images it serves procedural
// pattern indexes instead.
type Slideshow struct {
	dir   string
	files []string
	index int
	rng   *life.LCG
}

// NewSlideshow scans dir for .png files. A missing or unreadable
// directory is not an error; the slideshow then falls back to patterns.
func NewSlideshow(dir string, rng *life.LCG) *Slideshow {
	s := &Slideshow{dir: dir, rng: rng}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return s
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".png") {
			continue
		}
		if strings.EqualFold(name, NameBadgeFile) {
			continue
		}
		s.files = append(s.files, name)
	}
	return s
}

// Count returns how many slideshow images were found.
func (s *Slideshow) Count() int { return len(s.files) }

// Current returns the filename of the image being shown, or "" when the
// slideshow is in pattern fallback.
func (s *Slideshow) Current() string {
	if len(s.files) == 0 {
		return ""
	}
	return s.files[s.index]
}

// PatternIndex returns the index driving the pattern fallback.
func (s *Slideshow) PatternIndex() int { return s.index }

// Advance picks the next image at random, never repeating the current
// one when more than one image exists. Without images it rolls the
// pattern index instead.
func (s *Slideshow) Advance() {
	switch {
	case len(s.files) > 1:
		next := s.index
		for next == s.index {
			next = int(s.rng.Next()) % len(s.files)
		}
		s.index = next
	case len(s.files) == 0:
		s.index = int(s.rng.Next()) % patternChoices
	}
}

// Load decodes the current image, scaled to the panel size.
func (s *Slideshow) Load() (image.Image, error) {
	if len(s.files) == 0 {
		return nil, errors.New("badge: no slideshow images")
	}
	return loadPanelImage(filepath.Join(s.dir, s.files[s.index]))
}

// LoadNameBadge decodes the dedicated name-badge image if present.
func (s *Slideshow) LoadNameBadge() (image.Image, error) {
	return loadPanelImage(filepath.Join(s.dir, NameBadgeFile))
}

func loadPanelImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() != PanelW || b.Dy() != PanelH {
		img = transform.Resize(img, PanelW, PanelH, transform.Lanczos)
	}
	return img, nil
}
