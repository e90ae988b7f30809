package domain

// Cart is a named sales channel (a stall or location) whose daily revenue is tracked.
type Cart struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,max=120"`
}

func (c Cart) EntityID() string { return c.ID }

// Validate checks the cart fields.
func (c Cart) Validate() error {
	if err := validate.Struct(c); err != nil {
		return validationError(err)
	}
	return nil
}
