package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errorNotFound = errors.New("not found")

// badRequest marks an error caused by the request parameters.
type badRequest struct {
	err error
}

func (e badRequest) Error() string { return e.err.Error() }

func (e badRequest) Unwrap() error { return e.err }

func invalid(format string, args ...any) error {
	return badRequest{err: fmt.Errorf(format, args...)}
}

func sendError(c *gin.Context, err error) {
	var br badRequest
	switch {
	case errors.Is(err, errorNotFound):
		c.String(http.StatusNotFound, "")
	case errors.As(err, &br):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func get(f func() (any, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		result, err := f()
		if err != nil {
			sendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func getP[P any](f func(*P) (any, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		var params P

		err := c.ShouldBindQuery(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := f(&params)
		if err != nil {
			sendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func getU[P any](f func(*P) (any, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		var params P

		err := c.ShouldBindUri(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := f(&params)
		if err != nil {
			sendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func putP[P any](f func(*P) (any, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		var params P

		err := c.ShouldBindJSON(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := f(&params)
		if err != nil {
			sendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
