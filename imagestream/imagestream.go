// Package imagestream implements a tiled, mip-mapped image format whose
// tiles are demand-loaded through the file layer and evicted least
// recently used first. Pixels are 32-bit ARGB.
package imagestream

import (
	"context"
	"encoding/binary"

	"github.com/kenchrcum/udcore-go/result"
	"github.com/kenchrcum/udcore-go/udthread"
	"github.com/kenchrcum/udcore-go/vfile"
)

const (
	// FourCC identifies the on-disk format and doubles as its version.
	FourCC = uint32('U') | uint32('D')<<8 | uint32('T')<<16 | uint32('0')<<24

	// TileSize is the width and height of one tile in pixels.
	TileSize = 64

	// MaxMipLevels bounds the mip chain length.
	MaxMipLevels = 24

	headerSize    = 4 + 4 + 4 + 2 + 64 + 2
	nameFieldSize = 64
	tileBytes     = TileSize * TileSize * 4
)

// SampleFlags control Sample's addressing and filtering.
type SampleFlags uint32

const (
	FlagNone   SampleFlags = 0
	FlagFilter SampleFlags = 1 << (iota - 1) // bilinear instead of nearest
	FlagClamp                                // clamp UVs instead of wrapping
	FlagABGR                                 // return ABGR (red least significant) instead of ARGB
	FlagTopLeft                              // top-left UV origin instead of the GL bottom-left
	FlagNoStream                             // missing tiles return their cell index with zero alpha
)

// Image is a plain in-memory ARGB image, the input to Save.
type Image struct {
	Width, Height uint32
	Pixels        []uint32 // row-major, top-left origin
}

// At returns the pixel at (x, y) with clamping.
func (img *Image) At(x, y int) uint32 {
	if x < 0 {
		x = 0
	} else if x >= int(img.Width) {
		x = int(img.Width) - 1
	}
	if y < 0 {
		y = 0
	} else if y >= int(img.Height) {
		y = int(img.Height) - 1
	}
	return img.Pixels[y*int(img.Width)+x]
}

type tile struct {
	pixels  []uint32
	lastUse uint64
}

type mip struct {
	offset        int64 // from the start of the on-disk image to the first tile
	width, height uint32
	gridW, gridH  uint16
	cells         []*tile
}

// Streaming is a mip-mapped tiled image backed by an open file handle.
// Tiles load on demand during Sample and stay resident until FreeTiles
// evicts them.
type Streaming struct {
	Width, Height uint32
	MipCount      uint16
	Name          string

	lock       udthread.RWLock
	file       *vfile.File
	baseOffset int64
	mips       []mip
	useCounter uint64
}

// Load reads a streaming image's header from file at offset and prepares
// the tile grid for each mip level. No tile data is read until sampled.
func Load(ctx context.Context, file *vfile.File, offset int64) (*Streaming, error) {
	var header [headerSize]byte
	if _, err := file.Read(ctx, header[:], offset); err != nil {
		return nil, err
	}

	fourcc := binary.LittleEndian.Uint32(header[0:4])
	if fourcc != FourCC {
		return nil, result.New(result.ImageLoadFailure)
	}

	img := &Streaming{
		Width:      binary.LittleEndian.Uint32(header[4:8]),
		Height:     binary.LittleEndian.Uint32(header[8:12]),
		MipCount:   binary.LittleEndian.Uint16(header[12:14]),
		file:       file,
		baseOffset: offset,
	}
	nameBytes := header[14 : 14+nameFieldSize]
	for i, b := range nameBytes {
		if b == 0 {
			nameBytes = nameBytes[:i]
			break
		}
	}
	img.Name = string(nameBytes)
	offsetToMip0 := binary.LittleEndian.Uint16(header[headerSize-2 : headerSize])

	if img.MipCount == 0 || img.MipCount > MaxMipLevels || img.Width == 0 || img.Height == 0 {
		return nil, result.New(result.CorruptData)
	}

	tileOffset := int64(offsetToMip0)
	w, h := img.Width, img.Height
	for level := 0; level < int(img.MipCount); level++ {
		gridW := uint16((w + TileSize - 1) / TileSize)
		gridH := uint16((h + TileSize - 1) / TileSize)
		img.mips = append(img.mips, mip{
			offset: tileOffset,
			width:  w, height: h,
			gridW: gridW, gridH: gridH,
			cells: make([]*tile, int(gridW)*int(gridH)),
		})
		tileOffset += int64(gridW) * int64(gridH) * tileBytes
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}
	return img, nil
}

// cellIndex packs a mip level and tile index into the low 24 bits of a
// sample result: bits 16..23 carry the mip, bits 0..15 the tile.
func cellIndex(mipLevel int, tileIdx int) uint32 {
	return uint32(mipLevel)<<16 | uint32(tileIdx)&0xFFFF
}

// Sample looks up a pixel at (u, v) in [0,1). The default UV origin is
// the GL-style bottom left; FlagTopLeft flips it. FlagFilter requests
// bilinear filtering. With FlagNoStream a missing tile is not loaded:
// the return value carries the cell index in its low 24 bits with alpha
// zero, and the caller decides whether to LoadCell it.
func (s *Streaming) Sample(ctx context.Context, u, v float32, flags SampleFlags, mipLevel int) (uint32, error) {
	if mipLevel < 0 || mipLevel >= int(s.MipCount) {
		return 0, result.New(result.OutOfRange)
	}
	if flags&FlagTopLeft == 0 {
		v = 1 - v
	}
	m := &s.mips[mipLevel]

	fx := u * float32(m.width)
	fy := v * float32(m.height)

	if flags&FlagFilter == 0 {
		c, missing, err := s.texel(ctx, mipLevel, int(fx), int(fy), flags)
		if err != nil || missing {
			return c, err
		}
		return swizzle(c, flags), nil
	}

	// Bilinear: weights from the fractional position between texel centres.
	fx -= 0.5
	fy -= 0.5
	x0 := floorInt(fx)
	y0 := floorInt(fy)
	wx := fx - float32(x0)
	wy := fy - float32(y0)

	var colors [4]uint32
	offsets := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, off := range offsets {
		c, missing, err := s.texel(ctx, mipLevel, x0+off[0], y0+off[1], flags)
		if err != nil || missing {
			return c, err
		}
		colors[i] = c
	}

	top := lerpColor(colors[0], colors[1], wx)
	bottom := lerpColor(colors[2], colors[3], wx)
	return swizzle(lerpColor(top, bottom, wy), flags), nil
}

// texel fetches one pixel, loading its tile unless FlagNoStream asks for
// the miss to be reported instead. The second return is true when the
// tile is missing and the first return is its encoded cell index.
func (s *Streaming) texel(ctx context.Context, mipLevel, x, y int, flags SampleFlags) (uint32, bool, error) {
	m := &s.mips[mipLevel]
	if flags&FlagClamp != 0 {
		x = clampInt(x, 0, int(m.width)-1)
		y = clampInt(y, 0, int(m.height)-1)
	} else {
		x = wrapInt(x, int(m.width))
		y = wrapInt(y, int(m.height))
	}

	tileIdx := (y/TileSize)*int(m.gridW) + x/TileSize

	s.lock.LockRead()
	cell := m.cells[tileIdx]
	s.lock.UnlockRead()

	if cell == nil {
		if flags&FlagNoStream != 0 {
			return cellIndex(mipLevel, tileIdx) & 0x00FFFFFF, true, nil
		}
		if err := s.LoadCell(ctx, cellIndex(mipLevel, tileIdx)); err != nil {
			return 0, false, err
		}
		s.lock.LockRead()
		cell = m.cells[tileIdx]
		s.lock.UnlockRead()
	}

	s.lock.LockWrite()
	s.useCounter++
	cell.lastUse = s.useCounter
	pixel := cell.pixels[(y%TileSize)*TileSize+x%TileSize]
	s.lock.UnlockWrite()
	return pixel, false, nil
}

// LoadCell streams in the tile identified by a cell index previously
// returned by Sample with FlagNoStream.
func (s *Streaming) LoadCell(ctx context.Context, cellIndexData uint32) error {
	mipLevel := int(cellIndexData>>16) & 0xFF
	tileIdx := int(cellIndexData & 0xFFFF)
	if mipLevel >= int(s.MipCount) {
		return result.New(result.OutOfRange)
	}
	m := &s.mips[mipLevel]
	if tileIdx >= len(m.cells) {
		return result.New(result.OutOfRange)
	}

	s.lock.LockRead()
	loaded := m.cells[tileIdx] != nil
	s.lock.UnlockRead()
	if loaded {
		return nil
	}

	raw := make([]byte, tileBytes)
	offset := s.baseOffset + m.offset + int64(tileIdx)*tileBytes
	if _, err := s.file.Read(ctx, raw, offset); err != nil {
		return err
	}

	pixels := make([]uint32, TileSize*TileSize)
	for i := range pixels {
		pixels[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}

	s.lock.LockWrite()
	if m.cells[tileIdx] == nil {
		s.useCounter++
		m.cells[tileIdx] = &tile{pixels: pixels, lastUse: s.useCounter}
	}
	s.lock.UnlockWrite()
	return nil
}

// MemoryUsage reports the bytes held by resident tiles.
func (s *Streaming) MemoryUsage() uint32 {
	s.lock.LockRead()
	defer s.lock.UnlockRead()
	var usage uint32
	for i := range s.mips {
		for _, c := range s.mips[i].cells {
			if c != nil {
				usage += tileBytes
			}
		}
	}
	return usage
}

// FreeTiles evicts least-recently-used tiles until resident memory is at
// or below memoryUsageGoal bytes.
func (s *Streaming) FreeTiles(memoryUsageGoal uint32) {
	s.lock.LockWrite()
	defer s.lock.UnlockWrite()

	var usage uint32
	for i := range s.mips {
		for _, c := range s.mips[i].cells {
			if c != nil {
				usage += tileBytes
			}
		}
	}

	for usage > memoryUsageGoal {
		var oldest *tile
		var oldestMip, oldestIdx int
		for i := range s.mips {
			for j, c := range s.mips[i].cells {
				if c != nil && (oldest == nil || c.lastUse < oldest.lastUse) {
					oldest = c
					oldestMip, oldestIdx = i, j
				}
			}
		}
		if oldest == nil {
			return
		}
		s.mips[oldestMip].cells[oldestIdx] = nil
		usage -= tileBytes
	}
}

// Destroy drops every resident tile. The file handle stays with the
// caller and is not closed.
func (s *Streaming) Destroy() {
	s.lock.LockWrite()
	defer s.lock.UnlockWrite()
	for i := range s.mips {
		for j := range s.mips[i].cells {
			s.mips[i].cells[j] = nil
		}
	}
	s.file = nil
}

// Save generates the mip chain for img and serializes the streaming
// format: header, then each mip's tiles in row-major grid order.
func Save(img *Image, nameDesc string) ([]byte, error) {
	if img == nil || img.Width == 0 || img.Height == 0 {
		return nil, result.New(result.InvalidParameter)
	}
	if len(img.Pixels) < int(img.Width)*int(img.Height) {
		return nil, result.New(result.InvalidParameter)
	}

	levels := []*Image{img}
	for levels[len(levels)-1].Width > TileSize || levels[len(levels)-1].Height > TileSize {
		if len(levels) == MaxMipLevels {
			break
		}
		levels = append(levels, halve(levels[len(levels)-1]))
	}

	out := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(out[0:4], FourCC)
	binary.LittleEndian.PutUint32(out[4:8], img.Width)
	binary.LittleEndian.PutUint32(out[8:12], img.Height)
	binary.LittleEndian.PutUint16(out[12:14], uint16(len(levels)))
	copy(out[14:14+nameFieldSize], nameDesc)
	binary.LittleEndian.PutUint16(out[headerSize-2:headerSize], headerSize)

	for _, level := range levels {
		gridW := (int(level.Width) + TileSize - 1) / TileSize
		gridH := (int(level.Height) + TileSize - 1) / TileSize
		for ty := 0; ty < gridH; ty++ {
			for tx := 0; tx < gridW; tx++ {
				tileData := make([]byte, tileBytes)
				for py := 0; py < TileSize; py++ {
					for px := 0; px < TileSize; px++ {
						c := level.At(tx*TileSize+px, ty*TileSize+py)
						binary.LittleEndian.PutUint32(tileData[(py*TileSize+px)*4:], c)
					}
				}
				out = append(out, tileData...)
			}
		}
	}
	return out, nil
}

// halve box-filters an image down one mip level.
func halve(src *Image) *Image {
	w := src.Width / 2
	if w == 0 {
		w = 1
	}
	h := src.Height / 2
	if h == 0 {
		h = 1
	}
	dst := &Image{Width: w, Height: h, Pixels: make([]uint32, int(w)*int(h))}
	for y := 0; y < int(h); y++ {
		for x := 0; x < int(w); x++ {
			c00 := src.At(x*2, y*2)
			c10 := src.At(x*2+1, y*2)
			c01 := src.At(x*2, y*2+1)
			c11 := src.At(x*2+1, y*2+1)
			var avg uint32
			for shift := 0; shift < 32; shift += 8 {
				sum := (c00>>shift)&0xFF + (c10>>shift)&0xFF + (c01>>shift)&0xFF + (c11>>shift)&0xFF
				avg |= (sum / 4) << shift
			}
			dst.Pixels[y*int(w)+x] = avg
		}
	}
	return dst
}

func lerpColor(a, b uint32, t float32) uint32 {
	var out uint32
	for shift := 0; shift < 32; shift += 8 {
		ca := float32((a >> shift) & 0xFF)
		cb := float32((b >> shift) & 0xFF)
		out |= uint32(ca+(cb-ca)*t+0.5) << shift
	}
	return out
}

// swizzle converts ARGB to ABGR when requested.
func swizzle(c uint32, flags SampleFlags) uint32 {
	if flags&FlagABGR == 0 {
		return c
	}
	return c&0xFF00FF00 | (c&0x00FF0000)>>16 | (c&0x000000FF)<<16
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapInt(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func floorInt(f float32) int {
	i := int(f)
	if f < 0 && float32(i) != f {
		i--
	}
	return i
}
