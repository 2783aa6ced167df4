package requests

type RegisterUser struct {
	Username string `json:"username" validate:"max=64"`
	Password string `json:"password" validate:"max=128"`
}

type LoginUser struct {
	Username string `json:"username" validate:"max=64"`
	Password string `json:"password" validate:"max=128"`
}

// AuthAction is the single auth form: one username/password pair plus the chosen action.
type AuthAction struct {
	Username string `json:"username" validate:"max=64"`
	Password string `json:"password" validate:"max=128"`
	Action   string `json:"action"`
}
