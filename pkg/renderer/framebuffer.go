package renderer

import (
	"fmt"
	"image"
	"sync"
)

// numShards must be a power of two
const numShards = 64

type shardLocks struct{ mu [numShards]sync.Mutex }

func (sl *shardLocks) lock(row int)   { sl.mu[row&(numShards-1)].Lock() }
func (sl *shardLocks) unlock(row int) { sl.mu[row&(numShards-1)].Unlock() }

// FrameBuffer is the packed display buffer shared by all render workers and
// the display consumer. Each row is guarded by a shard lock, so a reader
// copying the frame never holds a lock for more than one row.
type FrameBuffer struct {
	width  int
	height int
	pixels []uint32
	locks  shardLocks
}

// NewFrameBuffer allocates a cleared buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}
}

// Width returns the frame width
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the frame height
func (fb *FrameBuffer) Height() int { return fb.height }

// Set publishes a packed pixel. Row 0 is the top of the image.
func (fb *FrameBuffer) Set(x, y int, pixel uint32) {
	fb.locks.lock(y)
	fb.pixels[y*fb.width+x] = pixel
	fb.locks.unlock(y)
}

// At returns the packed pixel at (x, y)
func (fb *FrameBuffer) At(x, y int) uint32 {
	fb.locks.lock(y)
	defer fb.locks.unlock(y)
	return fb.pixels[y*fb.width+x]
}

// Clear resets every pixel to zero
func (fb *FrameBuffer) Clear() {
	for y := 0; y < fb.height; y++ {
		fb.locks.lock(y)
		row := fb.pixels[y*fb.width : (y+1)*fb.width]
		for i := range row {
			row[i] = 0
		}
		fb.locks.unlock(y)
	}
}

// Pixels returns a row-by-row copy of the packed pixels
func (fb *FrameBuffer) Pixels() []uint32 {
	out := make([]uint32, len(fb.pixels))
	for y := 0; y < fb.height; y++ {
		fb.locks.lock(y)
		copy(out[y*fb.width:(y+1)*fb.width], fb.pixels[y*fb.width:(y+1)*fb.width])
		fb.locks.unlock(y)
	}
	return out
}

// Snapshot copies the frame into dst, which must have the frame's size.
// Pixels not yet written have zero alpha.
func (fb *FrameBuffer) Snapshot(dst *image.RGBA) error {
	size := dst.Bounds().Size()
	if size.X != fb.width || size.Y != fb.height {
		return fmt.Errorf("%w: snapshot target is %dx%d, frame is %dx%d", ErrInvalidDimensions, size.X, size.Y, fb.width, fb.height)
	}

	for y := 0; y < fb.height; y++ {
		offset := y * dst.Stride
		fb.locks.lock(y)
		for x, pixel := range fb.pixels[y*fb.width : (y+1)*fb.width] {
			r, g, b, a := Unpack(pixel)
			dst.Pix[offset+4*x+0] = r
			dst.Pix[offset+4*x+1] = g
			dst.Pix[offset+4*x+2] = b
			dst.Pix[offset+4*x+3] = a
		}
		fb.locks.unlock(y)
	}
	return nil
}

// Image returns a snapshot of the frame as a new RGBA image
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	_ = fb.Snapshot(img) // sizes match by construction
	return img
}
