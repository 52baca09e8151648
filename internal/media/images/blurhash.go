package images

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	"github.com/bbrks/go-blurhash"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// blurHashSize is the working size for BlurHash computation. The hash is a
// low-resolution placeholder, so a small thumbnail produces the same result
// orders of magnitude faster than the full image.
const blurHashSize = 64

// ComputeBlurHash generates a BlurHash placeholder string for the image at
// path. The gallery UI paints it while the real thumbnail loads. 4x3
// components keep the string around 20-30 characters.
func ComputeBlurHash(path string) (string, error) {
	img, err := decode(path)
	if err != nil {
		return "", err
	}

	hash, err := blurhash.Encode(4, 3, downscale(img))
	if err != nil {
		return "", fmt.Errorf("encode blurhash: %w", err)
	}
	return hash, nil
}

// downscale shrinks img to at most blurHashSize on its long edge using
// nearest-neighbor sampling, which is plenty for a blur placeholder.
func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= blurHashSize && srcH <= blurHashSize {
		return img
	}

	dstW, dstH := blurHashSize, blurHashSize
	if srcW > srcH {
		dstH = max(srcH*blurHashSize/srcW, 1)
	} else {
		dstW = max(srcW*blurHashSize/srcH, 1)
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xRatio := float64(srcW) / float64(dstW)
	yRatio := float64(srcH) / float64(dstH)
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			dst.Set(x, y, img.At(bounds.Min.X+int(float64(x)*xRatio), bounds.Min.Y+int(float64(y)*yRatio)))
		}
	}
	return dst
}
