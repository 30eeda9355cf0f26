package testsupport

import (
	"github.com/goliatone/go-tplbench/pkg/render"
	"github.com/goliatone/go-tplbench/pkg/table"
)

// CountingRenderer is a render.Renderer stub that records how often it was
// prepared and invoked. Output and Err are returned verbatim; FailOn makes the
// n-th call (1-based) return Err instead.
type CountingRenderer struct {
	ID         string
	Output     string
	Err        error
	FailOn     int
	PrepareErr error

	Calls    int
	Prepares int
}

var _ render.Renderer = (*CountingRenderer)(nil)
var _ render.Preparer = (*CountingRenderer)(nil)

func (c *CountingRenderer) Name() string        { return c.ID }
func (c *CountingRenderer) ContentType() string { return render.ContentTypeHTML }

func (c *CountingRenderer) Prepare() error {
	c.Prepares++
	return c.PrepareErr
}

func (c *CountingRenderer) Render(table.Table) (string, error) {
	c.Calls++
	if c.Err != nil && (c.FailOn == 0 || c.FailOn == c.Calls) {
		return "", c.Err
	}
	return c.Output, nil
}
