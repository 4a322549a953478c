// Package webaecho provides Echo framework integration for weba trees.
//
// Render a node from an Echo handler:
//
//	e.GET("/", func(c echo.Context) error {
//	    page, err := pageDef.Build(c.Request().Context(), &Page{})
//	    if err != nil {
//	        return err
//	    }
//	    return webaecho.Render(c, http.StatusOK, page)
//	})
//
// Or let the adapter build and render:
//
//	e.GET("/", webaecho.Handler(func(ctx context.Context, c echo.Context) (weba.Noder, error) {
//	    return pageDef.Await(ctx, &Page{})
//	}))
package webaecho

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pthm/weba"
)

// BuildFunc builds the tree for one Echo request.
type BuildFunc func(ctx context.Context, c echo.Context) (weba.Noder, error)

// Render writes n to the Echo response with the given status code.
func Render(c echo.Context, code int, n weba.Noder) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	res.WriteHeader(code)
	if c.Request().Method == http.MethodHead {
		return nil
	}
	_, err := n.AsNode().WriteTo(res)
	return err
}

// Handler adapts fn to an echo.HandlerFunc. fn receives a context with no
// current target. Missing templates become 404 errors; other errors are
// returned to Echo's error handler unchanged.
func Handler(fn BuildFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		n, err := fn(weba.Detach(c.Request().Context()), c)
		if err != nil {
			if errors.Is(err, weba.ErrTemplateNotFound) {
				return echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
			}
			return err
		}
		if n == nil || n.AsNode() == nil {
			return c.NoContent(http.StatusNoContent)
		}
		return Render(c, http.StatusOK, n)
	}
}

// Mount registers a GET route on e that serves the tree built by fn.
func Mount(e *echo.Echo, path string, fn BuildFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return e.GET(path, Handler(fn), m...)
}

// MountGroup registers a GET route on g that serves the tree built by fn,
// sharing the group's middleware.
func MountGroup(g *echo.Group, path string, fn BuildFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return g.GET(path, Handler(fn), m...)
}
