package utils

import (
	"medisense-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterUserRequest(request *requests.RegisterUser) {
	request.Username = strings.TrimSpace(request.Username)
	request.Password = strings.TrimSpace(request.Password)
}

func SanitizeLoginUserRequest(request *requests.LoginUser) {
	request.Username = strings.TrimSpace(request.Username)
	request.Password = strings.TrimSpace(request.Password)
}

func SanitizeAuthActionRequest(request *requests.AuthAction) {
	request.Username = strings.TrimSpace(request.Username)
	request.Password = strings.TrimSpace(request.Password)
	request.Action = strings.TrimSpace(request.Action)
}
