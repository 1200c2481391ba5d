package models

type Office struct {
	ID           int    `json:"id" db:"id"`
	Location     string `json:"location" db:"location"`
	CurrencyCode string `json:"currency_code" db:"currency_code"`
}
