package sampler

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strconv"
	"strings"

	"colorpick/pkg/colormath"
	"colorpick/pkg/logging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrCancelled is returned when the caller gives up on a sample, the
	// terminal equivalent of closing the eyedropper.
	ErrCancelled = errors.New("sampling cancelled")
	// ErrOutOfBounds is returned for coordinates outside the image.
	ErrOutOfBounds = errors.New("sample point outside image")
	ErrInvalidSpec = errors.New("invalid sample spec")
	// ErrTransparent is returned when every pixel in the sampled area is
	// fully transparent.
	ErrTransparent = errors.New("sample area is fully transparent")
)

// Sampler produces a single color.
type Sampler interface {
	Sample(ctx context.Context) (string, error)
}

// HexSampler returns a literal color.
type HexSampler struct {
	Hex string
}

// Sample validates and normalizes the literal.
func (h HexSampler) Sample(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	norm, ok := colormath.Normalize(h.Hex)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a #RRGGBB color", ErrInvalidSpec, h.Hex)
	}
	return norm, nil
}

// ImageSampler reads a pixel, or the mean of the square around it, from an
// image file.
type ImageSampler struct {
	Path string
	X, Y int
	// Radius grows the sampled area to (2r+1)x(2r+1), clipped to the image.
	Radius int
}

// Sample decodes the image and averages the requested area.
func (s ImageSampler) Sample(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	file, err := os.Open(s.Path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image %s: %w", s.Path, err)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	logging.Debug("Sampler", "Decoded %s image %s (%dx%d)", format, s.Path, img.Bounds().Dx(), img.Bounds().Dy())

	return averageAt(img, s.X, s.Y, s.Radius)
}

// averageAt coordinates are relative to the image's top-left corner. Pixels
// are weighted by alpha, so transparent ones do not darken the result.
func averageAt(img image.Image, x, y, radius int) (string, error) {
	b := img.Bounds()
	px, py := b.Min.X+x, b.Min.Y+y
	if !image.Pt(px, py).In(b) {
		return "", fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, b.Dx(), b.Dy())
	}
	radius = min(max(radius, 0), max(b.Dx(), b.Dy()))

	area := image.Rect(px-radius, py-radius, px+radius+1, py+radius+1).Intersect(b)
	var sumR, sumG, sumB, sumA float64
	for yy := area.Min.Y; yy < area.Max.Y; yy++ {
		for xx := area.Min.X; xx < area.Max.X; xx++ {
			// RGBA is alpha-premultiplied.
			r, g, bl, a := img.At(xx, yy).RGBA()
			if a == 0 {
				continue
			}
			sumR += float64(r)
			sumG += float64(g)
			sumB += float64(bl)
			sumA += float64(a)
		}
	}
	if sumA == 0 {
		return "", fmt.Errorf("%w: around (%d,%d) radius %d", ErrTransparent, x, y, radius)
	}

	return colormath.RGBToHex(
		math.Round(sumR/sumA*255),
		math.Round(sumG/sumA*255),
		math.Round(sumB/sumA*255),
	), nil
}

// FromSpec builds a sampler from "#RRGGBB" or "path@x,y[,radius]". The
// radius falls back to defaultRadius when omitted.
func FromSpec(spec string, defaultRadius int) (Sampler, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSpec)
	}
	if colormath.IsValidHex(spec) {
		return HexSampler{Hex: spec}, nil
	}

	at := strings.LastIndex(spec, "@")
	if at <= 0 {
		return nil, fmt.Errorf("%w: %q, expected #RRGGBB or path@x,y[,r]", ErrInvalidSpec, spec)
	}
	path, coords := spec[:at], strings.Split(spec[at+1:], ",")
	if len(coords) < 2 || len(coords) > 3 {
		return nil, fmt.Errorf("%w: %q, expected x,y or x,y,r", ErrInvalidSpec, spec[at+1:])
	}

	nums := make([]int, len(coords))
	for i, c := range coords {
		v, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: bad coordinate %q", ErrInvalidSpec, c)
		}
		nums[i] = v
	}

	s := ImageSampler{Path: path, X: nums[0], Y: nums[1], Radius: defaultRadius}
	if len(nums) == 3 {
		s.Radius = nums[2]
	}
	return s, nil
}
