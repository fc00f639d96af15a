// Package icons resolves toolbar icon resources by id and pixel size.
package icons

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/nfnt/resize"

	"netlab-designer/internal/logger"

	_ "image/gif"
	_ "image/jpeg"
)

//go:embed assets/*.svg
var assets embed.FS

// ID names a built-in toolbar icon.
type ID string

const (
	Start     ID = "start"
	Stop      ID = "stop"
	Select    ID = "select"
	Link      ID = "link"
	Run       ID = "run"
	Marker    ID = "marker"
	Oval      ID = "oval"
	Rectangle ID = "rectangle"
	Text      ID = "text"
	Router    ID = "router"
	Host      ID = "host"
	PC        ID = "pc"
	Hub       ID = "hub"
	Switch    ID = "switch"
	Wireless  ID = "wireless"
)

type cacheKey struct {
	key  string
	size int
}

// Provider caches one resource per (icon, pixel size). Built-in icons are
// vector assets and scale at draw time; custom raster icons are rendered
// once per requested size and never resized live.
type Provider struct {
	mu    sync.Mutex
	cache map[cacheKey]fyne.Resource
	log   logger.Logger
}

func NewProvider(log logger.Logger) *Provider {
	return &Provider{
		cache: make(map[cacheKey]fyne.Resource),
		log:   log,
	}
}

// Icon returns the built-in icon for id at the given display size.
func (p *Provider) Icon(id ID, size int) fyne.Resource {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := cacheKey{key: string(id), size: size}
	if res, ok := p.cache[key]; ok {
		return res
	}

	data, err := assets.ReadFile("assets/" + string(id) + ".svg")
	if err != nil {
		p.log.Error("icons", fmt.Errorf("unknown icon %q: %w", id, err), nil)
		return theme.BrokenImageIcon()
	}
	res := theme.NewThemedResource(fyne.NewStaticResource(string(id)+".svg", data))
	p.cache[key] = res
	return res
}

// CustomIcon loads a raster icon from disk and pre-renders it at the given
// pixel size.
func (p *Provider) CustomIcon(path string, size int) (fyne.Resource, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := cacheKey{key: path, size: size}
	if res, ok := p.cache[key]; ok {
		return res, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read icon %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", path, err)
	}

	scaled := resize.Resize(uint(size), uint(size), img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encode icon %s: %w", path, err)
	}

	name := fmt.Sprintf("%s-%d.png", filepath.Base(path), size)
	res := fyne.NewStaticResource(name, buf.Bytes())
	p.cache[key] = res
	return res, nil
}
