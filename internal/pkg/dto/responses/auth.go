package responses

type SessionState struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username"`
	View     string `json:"view"`
}

type LoginUser struct {
	Token   string       `json:"token"`
	Session SessionState `json:"session"`
}
