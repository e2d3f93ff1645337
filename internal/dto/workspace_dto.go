package dto

type DeleteItemResponse struct {
	Collection string `json:"collection"`
	Id         string `json:"id"`
}
