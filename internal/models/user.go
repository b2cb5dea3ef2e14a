package models

// UserCollection is the collection users are stored in. No endpoint reads or
// writes it; the schema is kept for external tooling.
const UserCollection = "user"

type User struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Address  string `json:"address" bson:"address"`
	Age      *int   `json:"age" bson:"age"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

type UserInput struct {
	Name     *string `json:"name" bson:"name" validate:"required"`
	Email    *string `json:"email" bson:"email" validate:"required"`
	Address  *string `json:"address" bson:"address" validate:"required"`
	Age      *int    `json:"age" bson:"age" validate:"omitempty,gte=0,lte=120"`
	IsActive *bool   `json:"is_active" bson:"is_active"`
}

// ValidateUser checks in against the user schema and applies defaults.
func ValidateUser(in UserInput) (User, error) {
	if err := validateStruct(in); err != nil {
		return User{}, err
	}

	u := User{
		Name:     *in.Name,
		Email:    *in.Email,
		Address:  *in.Address,
		Age:      in.Age,
		IsActive: true,
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	return u, nil
}
