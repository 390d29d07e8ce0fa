package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shapeDoc(n int) Document {
	doc := Document{}
	for i := 0; i < n; i++ {
		doc.Images = append(doc.Images, ImageSpec{
			Name:  string(rune('a' + i)),
			Shape: "circle",
		})
	}
	return doc
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestGateLoadsShapes(t *testing.T) {
	g := NewGate(nil)
	assert.False(t, g.IsReady())
	assert.Nil(t, g.Catalog())

	var fired atomic.Int32
	g.OnAllLoaded(func() { fired.Add(1) })

	require.NoError(t, g.Load(context.Background(), shapeDoc(8), nil))

	assert.True(t, g.IsReady())
	assert.NoError(t, g.Err())
	assert.Equal(t, int32(1), fired.Load(), "waiter runs once on load")

	loaded, total := g.Progress()
	assert.Equal(t, 8, loaded)
	assert.Equal(t, 8, total)

	c := g.Catalog()
	require.NotNil(t, c)
	assert.Len(t, c.Playable(), PlayableCount)
	assert.Equal(t, "a", c.Playable()[0].Name)

	// Registration after ready runs immediately.
	g.OnAllLoaded(func() { fired.Add(1) })
	assert.Equal(t, int32(2), fired.Load())
}

func TestGateDecodesPaths(t *testing.T) {
	data := pngBytes(t)
	doc := shapeDoc(6)
	doc.Images[2] = ImageSpec{Name: "bar", Path: "img/bar.png"}

	var opened []string
	open := func(_ context.Context, ref string) (io.ReadCloser, error) {
		opened = append(opened, ref)
		return io.NopCloser(bytes.NewReader(data)), nil
	}

	g := NewGate(nil)
	require.NoError(t, g.Load(context.Background(), doc, open))

	s, err := g.Catalog().Lookup("bar")
	require.NoError(t, err)
	w, h := s.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)
	assert.Equal(t, 'b', s.Glyph)
	assert.Equal(t, []string{"img/bar.png"}, opened)
}

func TestGateFailureKeepsGateClosed(t *testing.T) {
	doc := shapeDoc(6)
	doc.Images[0] = ImageSpec{Name: "cherry", Path: "img/cherry.png"}
	boom := errors.New("connection reset")
	open := func(context.Context, string) (io.ReadCloser, error) { return nil, boom }

	g := NewGate(nil)
	var fired bool
	g.OnAllLoaded(func() { fired = true })

	err := g.Load(context.Background(), doc, open)
	require.Error(t, err)
	assert.ErrorIs(t, g.Err(), boom)
	assert.False(t, g.IsReady())
	assert.False(t, fired)
	assert.Nil(t, g.Catalog())

	_, err = g.Wait(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestGateLoadOnlyOnce(t *testing.T) {
	g := NewGate(nil)
	require.NoError(t, g.Load(context.Background(), shapeDoc(6), nil))
	assert.ErrorIs(t, g.Load(context.Background(), shapeDoc(6), nil), ErrAlreadyLoading)
}

func TestGateWaitHonorsContext(t *testing.T) {
	g := NewGate(nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := g.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReadyGate(t *testing.T) {
	c, err := NewCatalog(sprites("a", "b", "c", "d", "e", "f"))
	require.NoError(t, err)

	g := ReadyGate(c)
	assert.True(t, g.IsReady())
	assert.Same(t, c, g.Catalog())

	got, err := g.Wait(context.Background())
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestDrawShapes(t *testing.T) {
	fill := ParseColor("#ef758c", "")
	for _, shape := range []string{
		"circle", "ellipse", "diamond", "square", "triangle", "star",
		"seven", "bell", "cherry", "bar", "arrow", "button", "panel",
	} {
		t.Run(shape, func(t *testing.T) {
			img, err := DrawShape(shape, fill, 0, 0)
			require.NoError(t, err)

			b := img.Bounds()
			cx, cy := b.Dx()/2, b.Dy()*2/3
			_, _, _, a := img.At(cx, cy).RGBA()
			assert.NotZero(t, a, "shape should cover its lower center")
		})
	}

	_, err := DrawShape("blob", fill, 0, 0)
	assert.Error(t, err)
}

func TestParseColorFallback(t *testing.T) {
	assert.Equal(t, "#5585a5", ParseColor("#5585a5", "").Hex())
	assert.Equal(t, "#fef81e", ParseColor("yellow", "#fef81e").Hex())
	assert.Equal(t, "#ffffff", ParseColor("", "").Hex())
}
