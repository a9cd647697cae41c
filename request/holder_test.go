package request

import (
	"testing"

	"github.com/sable-web/sable/headerbag"
	"github.com/stretchr/testify/require"
)

type incoming struct {
	method, path string
	headers      *headerbag.Bag
}

func (i *incoming) Method() string          { return i.method }
func (i *incoming) Path() string            { return i.path }
func (i *incoming) Headers() *headerbag.Bag { return i.headers }

type consumer struct {
	Holder
}

func TestHolder(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		var c consumer
		require.Nil(t, c.Request())
	})

	t.Run("identity preserved", func(t *testing.T) {
		req := &incoming{
			method:  "GET",
			path:    "/",
			headers: headerbag.New().Set("Host", "localhost"),
		}

		var c consumer
		require.Same(t, &c.Holder, c.SetRequest(req))
		require.Same(t, req, c.Request())
	})

	t.Run("last set wins", func(t *testing.T) {
		first := &incoming{path: "/a"}
		second := &incoming{path: "/b"}

		var c consumer
		c.SetRequest(first).SetRequest(second)
		require.Same(t, second, c.Request())
	})
}
