package command

type LoginUserCommand struct {
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

type LoginUserCommandResult struct {
	Token string `json:"token"`
}
