package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pktlens/pktlens/internal/errcode"
)

type Response struct {
	Code    errcode.Code `json:"code"`
	Message string       `json:"message"`
	Data    any          `json:"data"`
}

func Error(c *gin.Context, e errcode.ErrorCode) {
	status := http.StatusInternalServerError
	if e.Code() == errcode.CodeInvalid {
		status = http.StatusBadRequest
	}
	c.JSON(status, Response{
		Code:    e.Code(),
		Message: e.Message(),
	})
}

func Success(c *gin.Context, v any) {
	c.JSON(http.StatusOK, Response{
		Code:    errcode.CodeSuccess,
		Message: errcode.CodeSuccess.String(),
		Data:    v,
	})
}

// GetBodyData unmarshals the Data field of a response body into T.
func GetBodyData[T any](data []byte) (*T, error) {
	var (
		resp Response
		v    T
	)
	err := json.Unmarshal(data, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Code != errcode.CodeSuccess {
		return nil, fmt.Errorf("%s", resp.Message)
	}

	data, err = json.Marshal(resp.Data)
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(data, &v)
	return &v, err
}
