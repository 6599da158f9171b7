package command

type RegisterUserCommand struct {
	Name     string `json:"name" validate:"required" msg:"Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"min=6" msg:"Please enter a password with 6 or more characters"`
}

type RegisterUserCommandResult struct {
	Token string `json:"token"`
}
