package handler

import "github.com/yottalab/membership-system/internal/core/domain"

type addAccountRequest struct {
	ID         string `json:"id"         validate:"required"`
	Credential string `json:"credential" validate:"required"`
	SortOrder  *int   `json:"sort_order"`
	Equity     string `json:"equity"`
}

type updateAccountRequest struct {
	Credential *string `json:"credential"`
	SortOrder  *int    `json:"sort_order"`
	Equity     *string `json:"equity"`
}

type listAccountsResponse struct {
	Class string              `json:"class"`
	Users []domain.UserRecord `json:"users"`
}
