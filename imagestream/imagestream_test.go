package imagestream_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kenchrcum/udcore-go/imagestream"
	"github.com/kenchrcum/udcore-go/result"
	"github.com/kenchrcum/udcore-go/vfile"
	"github.com/kenchrcum/udcore-go/vfile/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	vfile.RegisterHandler("", handlers.Local{}, true)
	os.Exit(m.Run())
}

// gradient builds a 128x128 image whose pixel value encodes its own
// coordinates, so any sampling mistake is visible in the result.
func gradient() *imagestream.Image {
	img := &imagestream.Image{Width: 128, Height: 128, Pixels: make([]uint32, 128*128)}
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			img.Pixels[y*128+x] = 0xFF000000 | uint32(x)<<8 | uint32(y)
		}
	}
	return img
}

func saveToFile(t *testing.T) *vfile.File {
	t.Helper()
	blob, err := imagestream.Save(gradient(), "gradient test image")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "image.udt")
	require.NoError(t, vfile.Save(context.Background(), path, blob))

	f, err := vfile.Open(context.Background(), path, vfile.FlagRead)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close(context.Background()) })
	return f
}

func TestLoadHeader(t *testing.T) {
	f := saveToFile(t)
	img, err := imagestream.Load(context.Background(), f, 0)
	require.NoError(t, err)

	assert.Equal(t, uint32(128), img.Width)
	assert.Equal(t, uint32(128), img.Height)
	assert.Equal(t, uint16(2), img.MipCount) // 128 then 64
	assert.Equal(t, "gradient test image", img.Name)
}

func TestLoadRejectsBadFourCC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.bin")
	require.NoError(t, vfile.Save(context.Background(), path, make([]byte, 256)))
	f, err := vfile.Open(context.Background(), path, vfile.FlagRead)
	require.NoError(t, err)
	defer f.Close(context.Background())

	_, err = imagestream.Load(context.Background(), f, 0)
	assert.True(t, result.Is(err, result.ImageLoadFailure))
}

func TestSampleNearestTopLeft(t *testing.T) {
	f := saveToFile(t)
	img, err := imagestream.Load(context.Background(), f, 0)
	require.NoError(t, err)
	defer img.Destroy()

	// Texel (96, 32) in top-left convention; both coordinates fall in
	// different tiles of the 2x2 grid.
	u := (96.0 + 0.5) / 128.0
	v := (32.0 + 0.5) / 128.0
	c, err := img.Sample(context.Background(), float32(u), float32(v), imagestream.FlagTopLeft, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF000000|96<<8|32), c)
}

func TestSampleBottomLeftOrigin(t *testing.T) {
	f := saveToFile(t)
	img, err := imagestream.Load(context.Background(), f, 0)
	require.NoError(t, err)
	defer img.Destroy()

	// The GL convention puts v=0 at the bottom row (y=127).
	u := 0.5 / 128.0
	v := 0.5 / 128.0
	c, err := img.Sample(context.Background(), float32(u), float32(v), imagestream.FlagNone, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF000000|0<<8|127), c)
}

func TestSampleABGRSwizzle(t *testing.T) {
	f := saveToFile(t)
	img, err := imagestream.Load(context.Background(), f, 0)
	require.NoError(t, err)
	defer img.Destroy()

	u := (96.0 + 0.5) / 128.0
	v := (32.0 + 0.5) / 128.0
	c, err := img.Sample(context.Background(), float32(u), float32(v), imagestream.FlagTopLeft|imagestream.FlagABGR, 0)
	require.NoError(t, err)
	// ARGB 0xFF006020 becomes ABGR 0xFF206000.
	assert.Equal(t, uint32(0xFF000000|32<<16|96<<8), c)
}

func TestSampleBilinearAverages(t *testing.T) {
	f := saveToFile(t)
	img, err := imagestream.Load(context.Background(), f, 0)
	require.NoError(t, err)
	defer img.Destroy()

	// Exactly between texels (10,20) and (11,20): green channel is the
	// average of 10 and 11.
	u := (10.0 + 1.0) / 128.0
	v := (20.0 + 0.5) / 128.0
	c, err := img.Sample(context.Background(), float32(u), float32(v), imagestream.FlagTopLeft|imagestream.FlagFilter|imagestream.FlagClamp, 0)
	require.NoError(t, err)
	green := (c >> 8) & 0xFF
	assert.InDelta(t, 10.5, float64(green), 1.0)
	assert.Equal(t, uint32(20), c&0xFF)
}

func TestNoStreamReturnsCellIndex(t *testing.T) {
	f := saveToFile(t)
	img, err := imagestream.Load(context.Background(), f, 0)
	require.NoError(t, err)
	defer img.Destroy()

	u := (96.0 + 0.5) / 128.0
	v := (32.0 + 0.5) / 128.0
	c, err := img.Sample(context.Background(), float32(u), float32(v), imagestream.FlagTopLeft|imagestream.FlagNoStream, 0)
	require.NoError(t, err)
	// Alpha must be zero so the caller can tell this is an index.
	assert.Equal(t, uint32(0), c>>24)

	// Explicitly loading the reported cell makes the next sample real.
	require.NoError(t, img.LoadCell(context.Background(), c))
	c, err = img.Sample(context.Background(), float32(u), float32(v), imagestream.FlagTopLeft|imagestream.FlagNoStream, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF000000|96<<8|32), c)
}

func TestMipLevelSampling(t *testing.T) {
	f := saveToFile(t)
	img, err := imagestream.Load(context.Background(), f, 0)
	require.NoError(t, err)
	defer img.Destroy()

	// Mip 1 is a 64x64 box-filtered version; pixel (0,0) averages the
	// original (0,0),(1,0),(0,1),(1,1).
	u := 0.5 / 64.0
	v := 0.5 / 64.0
	c, err := img.Sample(context.Background(), float32(u), float32(v), imagestream.FlagTopLeft, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF000000), c&0xFF000000)
	green := (c >> 8) & 0xFF
	assert.Equal(t, uint32(0), green) // (0+1+0+1)/4 rounds down

	_, err = img.Sample(context.Background(), 0.5, 0.5, imagestream.FlagNone, 5)
	assert.True(t, result.Is(err, result.OutOfRange))
}

func TestFreeTilesEvictsLRU(t *testing.T) {
	f := saveToFile(t)
	img, err := imagestream.Load(context.Background(), f, 0)
	require.NoError(t, err)
	defer img.Destroy()

	// Touch all four tiles of mip 0.
	for _, uv := range [][2]float32{{0.1, 0.1}, {0.9, 0.1}, {0.1, 0.9}, {0.9, 0.9}} {
		_, err := img.Sample(context.Background(), uv[0], uv[1], imagestream.FlagTopLeft, 0)
		require.NoError(t, err)
	}
	require.Equal(t, uint32(4*64*64*4), img.MemoryUsage())

	img.FreeTiles(2 * 64 * 64 * 4)
	assert.Equal(t, uint32(2*64*64*4), img.MemoryUsage())

	img.FreeTiles(0)
	assert.Equal(t, uint32(0), img.MemoryUsage())

	// Evicted tiles reload transparently.
	c, err := img.Sample(context.Background(), float32(0.5/128.0), float32(0.5/128.0), imagestream.FlagTopLeft, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF000000), c)
}

func TestSaveRejectsEmptyImage(t *testing.T) {
	_, err := imagestream.Save(&imagestream.Image{}, "empty")
	assert.True(t, result.Is(err, result.InvalidParameter))
	_, err = imagestream.Save(nil, "nil")
	assert.True(t, result.Is(err, result.InvalidParameter))
}
