package query

import "hub-service/internal/application/common"

type ProfileQueryResult struct {
	Result *common.ProfileResult `json:"result"`
}

type ProfileQueryListResult struct {
	Result []*common.ProfileResult `json:"result"`
}
