// jpeg.go — JPEG file writer.
package generator

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
)

// writeJPEG encodes img to a JPEG file at the given path.
func writeJPEG(output string, img image.Image, quality int) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}

	if err := encodeJPEG(f, img, quality); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	return nil
}

func encodeJPEG(w io.Writer, img image.Image, quality int) error {
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encode JPEG: %w", err)
	}
	return nil
}
