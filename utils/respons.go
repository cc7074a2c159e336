package utils

import (
	"github.com/gin-gonic/gin"
)

// Response envelopes: success carries the document under data.data so list
// and detail payloads share one shape, failure carries a plain message.

type SuccessResponse struct {
	Status  string      `json:"status"`
	Results *int        `json:"results,omitempty"`
	Data    interface{} `json:"data"`
}

type FailResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func RespondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, SuccessResponse{
		Status: "success",
		Data:   gin.H{"data": data},
	})
}

// RespondList is RespondData plus the result count, for collection reads.
func RespondList(c *gin.Context, code int, results int, data interface{}) {
	c.JSON(code, SuccessResponse{
		Status:  "success",
		Results: &results,
		Data:    gin.H{"data": data},
	})
}

func RespondFail(c *gin.Context, code int, err error) {
	c.JSON(code, FailResponse{
		Status:  "fail",
		Message: err.Error(),
	})
}
