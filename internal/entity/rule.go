package entity

type Rule struct {
	Base

	Title       string
	Description string
	Category    string
	Index       int
}
