package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// WritePNG encodes the current back buffer of fb as a PNG image.
func WritePNG(w io.Writer, fb Framebuffer) error {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return fmt.Errorf("hal: snapshot needs an RGB565 framebuffer")
	}
	return encodeRGB565(w, fb.Buffer(), fb.Width(), fb.Height(), fb.StrideBytes())
}

func encodeRGB565(w io.Writer, buf []byte, width, height, stride int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		if y*stride >= len(buf) {
			break
		}
		row := buf[y*stride:]
		if len(row) > width*2 {
			row = row[:width*2]
		}
		rgb565ToRGBA(img.Pix[y*img.Stride:(y+1)*img.Stride], row)
	}
	return png.Encode(w, img)
}
