package handlers

import (
	"quicksend/internal/utils/response"
	"quicksend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// parseID reads a positive numeric route parameter.
func parseID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// bind parses the JSON body into dst and validates it. When it returns
// false the 400 response has already been written and its error is in err.
func bind(c *fiber.Ctx, dst any) (ok bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		return false, response.BadRequest(c, "invalid request body")
	}
	if errs := validation.Struct(dst); len(errs) > 0 {
		return false, response.BadRequest(c, errs[0].Error())
	}
	return true, nil
}
