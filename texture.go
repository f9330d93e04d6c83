package stilllife

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// MaxSceneTextures is the number of texture slots a scene may fill,
// one per GL texture unit the shader can address.
const MaxSceneTextures = 16

type textureEntry struct {
	tag string
	id  uint32
}

// TextureRegistry maps programmer-chosen tags to GL texture handles.
// Slots are assigned in load order; lookups are linear scans, which is
// fine at this capacity. A failed load is logged and skipped so the
// scene still renders, just without that texture.
type TextureRegistry struct {
	log     Logger
	entries []textureEntry
}

func NewTextureRegistry(log Logger) *TextureRegistry {
	if log == nil {
		log = NewNopLogger()
	}
	return &TextureRegistry{
		log:     log,
		entries: make([]textureEntry, 0, MaxSceneTextures),
	}
}

// register records a tag/handle pair, rejecting overflow past
// MaxSceneTextures. Kept separate from the GL upload so the capacity
// bookkeeping is testable without a context.
func (r *TextureRegistry) register(tag string, id uint32) error {
	if len(r.entries) >= MaxSceneTextures {
		return fmt.Errorf("texture registry full (%d slots), cannot register %q", MaxSceneTextures, tag)
	}
	r.entries = append(r.entries, textureEntry{tag: tag, id: id})
	return nil
}

// Count returns the number of live texture entries.
func (r *TextureRegistry) Count() int {
	return len(r.entries)
}

// FindTextureID returns the GL handle registered under tag, or -1.
func (r *TextureRegistry) FindTextureID(tag string) int32 {
	for _, e := range r.entries {
		if e.tag == tag {
			return int32(e.id)
		}
	}
	return -1
}

// FindTextureSlot returns the texture unit slot registered under tag,
// or -1.
func (r *TextureRegistry) FindTextureSlot(tag string) int32 {
	for i, e := range r.entries {
		if e.tag == tag {
			return int32(i)
		}
	}
	return -1
}

// CreateGLTexture loads an image file, uploads it as a mipmapped
// repeat-wrapped 2D texture, and registers it under tag. Returns false
// on failure; the failure is logged and rendering continues.
func (r *TextureRegistry) CreateGLTexture(filename string, tag string) bool {
	if len(r.entries) >= MaxSceneTextures {
		r.log.Errorf("texture registry full, skipping %q (%s)", tag, filename)
		return false
	}

	rgba, err := loadImageRGBA(filename)
	if err != nil {
		r.log.Errorf("could not load image %s: %v", filename, err)
		return false
	}

	bounds := rgba.Bounds()

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(bounds.Dx()), int32(bounds.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := r.register(tag, textureID); err != nil {
		gl.DeleteTextures(1, &textureID)
		r.log.Errorf("%v", err)
		return false
	}

	r.log.Infof("loaded texture %q from %s (%dx%d)", tag, filename, bounds.Dx(), bounds.Dy())
	return true
}

// BindGLTextures binds each registered texture to the texture unit
// matching its slot index.
func (r *TextureRegistry) BindGLTextures() {
	for i, e := range r.entries {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, e.id)
	}
}

// DestroyGLTextures releases every GL handle and empties the registry.
func (r *TextureRegistry) DestroyGLTextures() {
	for _, e := range r.entries {
		id := e.id
		gl.DeleteTextures(1, &id)
	}
	r.entries = r.entries[:0]
}

// loadImageRGBA decodes a jpeg/png/bmp/tiff file into RGBA pixels,
// flipped vertically so row 0 is the bottom row, as GL texture
// coordinates expect.
func loadImageRGBA(filename string) (*image.RGBA, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return flipVertical(rgba), nil
}

// flipVertical mirrors the image across its horizontal midline.
func flipVertical(src *image.RGBA) *image.RGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+w*4]
		dstRow := dst.Pix[(h-1-y)*dst.Stride : (h-1-y)*dst.Stride+w*4]
		copy(dstRow, srcRow)
	}
	return dst
}
