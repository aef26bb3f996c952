package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *
var assetsFS embed.FS

var images = map[string]*ebiten.Image{}

// LoadImage loads an image from the embedded assets or the filesystem and
// caches it by path. Images are loaded once and never released.
func LoadImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("assets: empty image path")
	}
	if img, ok := images[path]; ok {
		return img, nil
	}
	img, err := loadImageFromAssetsOrFS(path)
	if err != nil {
		return nil, err
	}
	images[path] = img
	return img, nil
}

// LoadImageOr loads path, falling back to a w x h placeholder filled with c
// when the file is missing or undecodable. The placeholder is cached under
// path so every caller shares it.
func LoadImageOr(path string, w, h int, c color.Color) *ebiten.Image {
	img, err := LoadImage(path)
	if err == nil {
		return img
	}
	log.Printf("assets: %v, using %dx%d placeholder", err, w, h)
	img = Placeholder(w, h, c)
	if path != "" {
		images[path] = img
	}
	return img
}

// Placeholder makes a solid w x h image.
func Placeholder(w, h int, c color.Color) *ebiten.Image {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("assets: degenerate placeholder %dx%d", w, h))
	}
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}

// LoadFile loads an embedded asset by assets-relative path, falling back to
// the filesystem.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if b, err := assetsFS.ReadFile(clean); err == nil {
		return b, nil
	}
	var lastErr error
	for _, p := range diskCandidates(path) {
		b, err := os.ReadFile(p)
		if err == nil {
			return b, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("assets: load %s: %w", path, lastErr)
}

func loadImageFromAssetsOrFS(path string) (*ebiten.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func diskCandidates(path string) []string {
	return []string{path, filepath.Join("assets", path), filepath.Base(path)}
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
