package echoapi

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

func respondData(ctx echo.Context, code int, data interface{}) error {
	return ctx.JSON(code, echo.Map{"success": true, "data": data})
}

func respondMessage(ctx echo.Context, code int, msg string) error {
	return ctx.JSON(code, echo.Map{"success": true, "message": msg})
}

// queryOrBodyParam returns the named parameter from the query string, falling
// back to a JSON body field of the same name. DELETE callers send ids either way.
func queryOrBodyParam(ctx echo.Context, name string) string {
	if val := strings.TrimSpace(ctx.QueryParam(name)); val != "" {
		return val
	}
	body := map[string]interface{}{}
	if err := json.NewDecoder(ctx.Request().Body).Decode(&body); err != nil {
		return ""
	}
	switch val := body[name].(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.Itoa(int(val))
	}
	return ""
}

// intParam parses a required positive integer id; 0 means missing/invalid.
func intParam(raw string) int {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
