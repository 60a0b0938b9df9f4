package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"wireframe/hal"
	"wireframe/tasks/viewer"
)

// guard turns a panic in step into an error after logging it and painting
// it onto the framebuffer.
func guard(h hal.HAL, logger *log.Logger, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			logger.Error("viewer panic", "panic", v)
			for _, line := range strings.Split(string(stack), "\n") {
				if line != "" {
					logger.Debug(line)
				}
			}
			showPanic(h, v, stack)
			err = fmt.Errorf("viewer panic: %v", v)
		}()
		return step()
	}
}

func showPanic(h hal.HAL, v any, stack []byte) {
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(255, 255, 255)

	font := &proggy.TinySZ8pt7b
	fontHeight := int16(font.GetYAdvance())
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = fb.Present()
		return
	}

	lines := []string{
		"wireframe panic:",
		fmt.Sprintf("%v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
			}
		}
	}

	d := viewer.Displayer(fb)
	fg := color.RGBA{A: 255}
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}
	maxH := int16(fb.Height())

	y := int16(0)
draw:
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > maxH {
				break draw
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y+fontHeight, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
