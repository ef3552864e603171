package surfaces

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// PixelLayout is the channel layout of a decoded texture.
type PixelLayout int

const (
	LayoutRed PixelLayout = iota + 1
	LayoutRGB
	LayoutRGBA
)

// Channels returns the number of 8-bit channels per pixel.
func (l PixelLayout) Channels() int {
	switch l {
	case LayoutRed:
		return 1
	case LayoutRGB:
		return 3
	case LayoutRGBA:
		return 4
	default:
		return 0
	}
}

func (l PixelLayout) String() string {
	switch l {
	case LayoutRed:
		return "red"
	case LayoutRGB:
		return "rgb"
	case LayoutRGBA:
		return "rgba"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// TextureImage holds 8-bit pixels with rows stored bottom-to-top, ready
// for a GL texture upload.
type TextureImage struct {
	Width, Height int
	Layout        PixelLayout
	Pix           []byte
}

// LoadTexture decodes a PNG, BMP or TIFF file.
func LoadTexture(path string) (*TextureImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	tex, err := DecodeTexture(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Info("texture loaded", "path", path, "width", tex.Width, "height", tex.Height, "layout", tex.Layout)
	return tex, nil
}

// DecodeTexture decodes an image with 8 bits per channel in a red, RGB or
// RGBA layout. Any other depth or layout is rejected.
func DecodeTexture(r io.Reader) (*TextureImage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	// The PNG decoder widens low bit depths and gray+alpha, so check the header.
	if bytes.HasPrefix(data, pngSignature) {
		if err := checkPNGHeader(data); err != nil {
			return nil, err
		}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	b := img.Bounds()
	tex := &TextureImage{Width: b.Dx(), Height: b.Dy()}

	switch src := img.(type) {
	case *image.Gray:
		tex.Layout = LayoutRed
		tex.Pix = flipCopy(src.Pix, src.Stride, tex.Width, tex.Height, 1)
	case *image.NRGBA:
		tex.Layout = LayoutRGBA
		tex.Pix = flipCopy(src.Pix, src.Stride, tex.Width, tex.Height, 4)
	case *image.RGBA:
		if src.Opaque() {
			tex.Layout = LayoutRGB
			tex.Pix = packRGB(src.Pix, src.Stride, tex.Width, tex.Height)
			break
		}
		// Premultiplied alpha; GL expects straight alpha.
		dst := image.NewNRGBA(image.Rect(0, 0, tex.Width, tex.Height))
		xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
		tex.Layout = LayoutRGBA
		tex.Pix = flipCopy(dst.Pix, dst.Stride, tex.Width, tex.Height, 4)
	case *image.Gray16, *image.RGBA64, *image.NRGBA64:
		return nil, fmt.Errorf("%s image: bit depth must be 8: %w", format, ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%s image: unknown pixel layout %T: %w", format, img, ErrUnsupportedFormat)
	}
	return tex, nil
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// PNG color types that map onto a texture layout.
const (
	pngGray = 0
	pngRGB  = 2
	pngRGBA = 6
)

// checkPNGHeader reads bit depth and color type from the IHDR chunk, which
// must directly follow the signature.
func checkPNGHeader(data []byte) error {
	if len(data) < 26 || string(data[12:16]) != "IHDR" {
		return fmt.Errorf("png image: missing IHDR: %w", ErrUnsupportedFormat)
	}
	depth, colorType := data[24], data[25]
	if depth != 8 {
		return fmt.Errorf("png image: bit depth must be 8, got %d: %w", depth, ErrUnsupportedFormat)
	}
	switch colorType {
	case pngGray, pngRGB, pngRGBA:
		return nil
	default:
		return fmt.Errorf("png image: color type %d is not gray, RGB or RGBA: %w", colorType, ErrUnsupportedFormat)
	}
}

// flipCopy copies width*channels bytes per row, last row first.
func flipCopy(pix []byte, stride, width, height, channels int) []byte {
	row := width * channels
	out := make([]byte, 0, row*height)
	for y := height - 1; y >= 0; y-- {
		out = append(out, pix[y*stride:y*stride+row]...)
	}
	return out
}

// packRGB drops the alpha channel of opaque RGBA rows, last row first.
func packRGB(pix []byte, stride, width, height int) []byte {
	out := make([]byte, 0, width*height*3)
	for y := height - 1; y >= 0; y-- {
		line := pix[y*stride : y*stride+width*4]
		for x := 0; x < width; x++ {
			out = append(out, line[x*4], line[x*4+1], line[x*4+2])
		}
	}
	return out
}
