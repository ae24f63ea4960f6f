package models

type Organization struct {
	ID         string
	Name       string
	Type       string
	Address    string
	City       string
	PostalCode string
	Telecoms   []ContactPoint
}
