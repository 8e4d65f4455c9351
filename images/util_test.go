package images

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	a := newField(8, 8, borderGrey)
	b := newField(8, 8, borderGrey)
	assert.Equal(t, Checksum(a), Checksum(b))

	b.SetNRGBA(7, 7, contentRed)
	assert.NotEqual(t, Checksum(a), Checksum(b))

	// Same bytes, different shape.
	assert.NotEqual(t, Checksum(newField(4, 16, borderGrey)), Checksum(newField(16, 4, borderGrey)))

	assert.Equal(t, "empty", Checksum(image.NewNRGBA(image.Rect(0, 0, 0, 0))))
}

func TestChecksum_IgnoresStridePadding(t *testing.T) {
	full := newField(10, 10, borderGrey)
	sub := full.SubImage(image.Rect(2, 2, 6, 6)).(*image.NRGBA)

	assert.Equal(t, Checksum(newField(4, 4, borderGrey)), Checksum(sub))
}
