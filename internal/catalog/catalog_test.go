package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProducts(t *testing.T) {
	c := Products()

	assert.Len(t, c.Women, 3)
	assert.Len(t, c.Men, 3)
	assert.Equal(t, "Diamond Necklace", c.Women[0].Name)
	assert.Equal(t, 450.0, c.Men[1].Price)

	// 每次返回新的切片，调用方修改不会影响目录
	c.Women[0].Price = 1
	assert.Equal(t, 250.0, Products().Women[0].Price)
}
