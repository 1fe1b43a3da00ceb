package dto

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	UserType        string `json:"user_type"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AgreeToTerms    bool   `json:"agree_to_terms"`
}
