package response

import "github.com/shopswift/shopswift-api/internal/domain"

type LoginResponse struct {
	Token        string      `json:"token"`
	User         domain.User `json:"user"`
	RedirectPath string      `json:"redirect_path"`
}
