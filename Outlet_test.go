package sproute_test

import (
	"fmt"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/sproute"
)

func TestOutletWrites(t *testing.T) {
	var o sproute.Outlet

	n, err := o.WriteString("<p>")
	assert.Nil(t, err)
	assert.Equal(t, n, 3)

	fmt.Fprintf(&o, "%d items", 3)
	o.WriteString("</p>")

	assert.Equal(t, o.String(), "<p>3 items</p>")
	assert.Equal(t, string(o.Body()), "<p>3 items</p>")
}

func TestOutletClear(t *testing.T) {
	var o sproute.Outlet

	o.WriteString("body")
	o.SetTitle("Title")
	o.Clear()

	assert.Equal(t, o.String(), "")
	assert.Equal(t, o.Title(), "")
}

func TestOutletSetBody(t *testing.T) {
	var o sproute.Outlet

	o.SetBody([]byte("replaced"))
	assert.Equal(t, o.String(), "replaced")
}
