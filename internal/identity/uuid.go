package identity

import (
	"github.com/gofrs/uuid"

	"github.com/Guyuepp/portfolio-cms/domain"
)

// Generator hands out random (v4) UUIDs in canonical string form
type Generator struct{}

var _ domain.IDGenerator = Generator{}

func New() Generator {
	return Generator{}
}

func (Generator) NewID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Valid accepts only canonical, non-nil UUIDs
func (Generator) Valid(id string) bool {
	if len(id) != 36 {
		return false
	}
	u, err := uuid.FromString(id)
	if err != nil {
		return false
	}
	return u != uuid.Nil
}
