package query

import "hub-service/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}
