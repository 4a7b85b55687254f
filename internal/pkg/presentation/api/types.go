package api

import (
	"encoding/json"

	"github.com/carewatch/inactivity-mgmt/pkg/types"
)

type meta struct {
	TotalRecords uint64  `json:"totalRecords"`
	Offset       *uint64 `json:"offset,omitempty"`
	Limit        *uint64 `json:"limit,omitempty"`
	Count        uint64  `json:"count"`
}

type ApiResponse struct {
	Meta *meta `json:"meta,omitempty"`
	Data any   `json:"data"`
}

func (r ApiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

func newCollectionResponse[T any](c types.Collection[T]) ApiResponse {
	if c.Data == nil {
		c.Data = []T{}
	}

	return ApiResponse{
		Meta: &meta{
			TotalRecords: c.TotalCount,
			Offset:       &c.Offset,
			Limit:        &c.Limit,
			Count:        c.Count,
		},
		Data: c.Data,
	}
}
