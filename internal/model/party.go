package model

import "strings"

type CustomerType string

const (
	CustomerNatural   CustomerType = "natural"
	CustomerJuridical CustomerType = "juridical"
)

type Customer struct {
	BaseModel
	Name     string       `db:"name" json:"name"`
	LastName string       `db:"last_name" json:"last_name"`
	DNI      string       `db:"dni" json:"dni"`
	Email    *string      `db:"email" json:"email"`
	Phone    *string      `db:"phone" json:"phone"`
	Address  *string      `db:"address" json:"address"`
	Type     CustomerType `db:"type_customer" json:"type_customer"`
	Gender   string       `db:"gender" json:"gender"`
}

func (c *Customer) FullName() string {
	return c.Name + " " + c.LastName
}

// Normalize title-cases the names, matching the legacy casing rules.
func (c *Customer) Normalize() {
	c.Name = titleCase(c.Name)
	c.LastName = titleCase(c.LastName)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type Supplier struct {
	BaseModel
	Name          string  `db:"name" json:"name"`
	ContactPerson *string `db:"contact_person" json:"contact_person"`
	Phone         *string `db:"phone" json:"phone"`
	Email         *string `db:"email" json:"email"`
	Address       *string `db:"address" json:"address"`
}

func (s *Supplier) Normalize() {
	s.Name = strings.ToUpper(strings.TrimSpace(s.Name))
}
