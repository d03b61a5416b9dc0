package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	types "github.com/sumitk238/shopping-cart/internal/domain"
)

// InternalServerErrorMessage masks internal failure detail from callers.
const InternalServerErrorMessage = "Something went wrong !! Please try later !!"

func RespondProblem(c *gin.Context, status int, reason string) {
	c.JSON(status, types.ProblemDetails{Reason: reason})
}

func RespondInternalError(c *gin.Context) {
	RespondProblem(c, http.StatusInternalServerError, InternalServerErrorMessage)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
