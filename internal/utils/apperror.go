package utils

import (
	"github.com/labstack/echo/v4"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
)

// AppErrorResponse maps a usecase error to the HTTP response envelope.
// The status and machine code come from the shared taxonomy.
func AppErrorResponse(c echo.Context, err error) error {
	return ErrorResponseWithCode(c,
		apperrors.HTTPStatus(err),
		apperrors.CodeOf(err),
		apperrors.MessageOf(err),
	)
}
