// Package image writes rendered pixel buffers as ASCII PPM. It reads pixel
// values only; nothing here touches the tape.
package image

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lumen-ml/lumen/internal/autograd"
	"github.com/lumen-ml/lumen/internal/rtmath"
)

// Tonemap clamps to [0, 1] and applies gamma 2.2.
func Tonemap(x autograd.Scalar) autograd.Scalar {
	return rtmath.Clamp(x, autograd.Const(0), autograd.Const(1)).Pow(1 / 2.2)
}

// Write emits the buffer as ASCII PPM: a P3 header followed by one pixel of
// three decimal channels per line, rows top to bottom.
func Write(w io.Writer, img []rtmath.Direction, width, height int) error {
	if len(img) != width*height {
		return fmt.Errorf("image: buffer holds %d pixels, want %d", len(img), width*height)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := img[y*width+x]
			fmt.Fprintf(bw, "%d %d %d\n",
				channel(px.X), channel(px.Y), channel(px.Z))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("image: flush: %w", err)
	}
	return nil
}

// Save writes the buffer to a PPM file.
func Save(path string, img []rtmath.Direction, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image: create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, img, width, height); err != nil {
		return err
	}
	return nil
}

func channel(x autograd.Scalar) int {
	return int(Tonemap(x).Value() * 255)
}
