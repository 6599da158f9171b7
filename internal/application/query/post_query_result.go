package query

import "hub-service/internal/application/common"

type PostQueryResult struct {
	Result *common.PostResult `json:"result"`
}

type PostQueryListResult struct {
	Result []*common.PostResult `json:"result"`
}
