package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindJSON decodes the request body as JSON whatever the Content-Type says.
// An empty body leaves v untouched so field validation reports it.
func bindJSON(c echo.Context, v any) error {
	req := c.Request()
	if req.Body == nil || req.Body == http.NoBody {
		return nil
	}

	err := c.Echo().JSONSerializer.Deserialize(c, v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
