package domain

// Stack is one row of an inventory summary: how many carried items share a name
type Stack struct {
	Name     string   `json:"name"`
	Kind     ItemKind `json:"kind"`
	Quantity int      `json:"quantity"`
}
