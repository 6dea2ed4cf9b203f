package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/pktlens/pktlens/internal/api"
	"github.com/pktlens/pktlens/pkg/utils"
)

func remoteDecode(addr string, data []byte, assumeEthernetFraming bool) (*api.DecodeResp, error) {
	body, err := json.Marshal(api.DecodeReq{
		Data:                  hex.EncodeToString(data),
		AssumeEthernetFraming: assumeEthernetFraming,
	})
	if err != nil {
		return nil, err
	}

	return utils.NewHTTPRequestMessage(api.APIPathDecode, api.GetBodyData[api.DecodeResp],
		utils.WithReqAddr(addr),
		utils.WithReqMethod(http.MethodPost),
		utils.WithReqBody(bytes.NewBuffer(body)),
	)
}
