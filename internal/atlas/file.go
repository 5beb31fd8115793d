package atlas

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// FromImage wraps a decoded image as an atlas. The image height is the
// frame size and its width must be a whole number of frames.
func FromImage(img image.Image) (*Atlas, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: image is %dx%d", ErrMalformedAtlas, w, h)
	}
	if w%h != 0 {
		return nil, fmt.Errorf("%w: width %d is not a multiple of height %d", ErrMalformedAtlas, w, h)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	}
	return &Atlas{FrameWidth: h, FrameHeight: h, FrameCount: w / h, Image: rgba}, nil
}

// Load reads a PNG atlas from path.
func Load(path string) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("atlas: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedAtlas, path, err)
	}
	a, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Save writes a as PNG to path, replacing any existing file.
func Save(a *Atlas, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("atlas: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("atlas: close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, a.Image); err != nil {
		return fmt.Errorf("atlas: encode %s: %w", path, err)
	}
	return nil
}

// Link points linkName at target, replacing whatever linkName was. A
// relative target is resolved against the directory of linkName. Where
// symlinks are unavailable the target is copied instead.
func Link(target, linkName string) error {
	if err := os.Remove(linkName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("atlas: replace %s: %w", linkName, err)
	}
	if err := os.Symlink(target, linkName); err == nil {
		return nil
	}

	src := target
	if !filepath.IsAbs(src) {
		src = filepath.Join(filepath.Dir(linkName), target)
	}
	return copyFile(src, linkName)
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("atlas: copy %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("atlas: copy to %s: %w", dst, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("atlas: close %s: %w", dst, cerr)
		}
	}()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("atlas: copy %s to %s: %w", src, dst, err)
	}
	return nil
}
