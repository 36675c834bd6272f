package authService

import (
	"net/http"

	"lms/api"
	"lms/models"
	"lms/validators"
)

// AuthService talks to the authentication endpoints. It is storage-agnostic:
// tokens returned here are persisted by the session manager, never by the
// service itself.
type AuthService struct {
	client *api.Client
}

func New(client *api.Client) *AuthService {
	return &AuthService{client: client}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	// The server is the sole validator of the confirmation match; the client
	// sends both fields as entered.
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

// AuthResponse is the payload of a successful login or registration.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// Login posts credentials and returns the issued session token.
func (s *AuthService) Login(email, password string) (*AuthResponse, error) {
	req := LoginRequest{Email: email, Password: password}
	if err := validators.Check(req); err != nil {
		return nil, err
	}

	body, err := s.client.Post(api.EndpointLogin(), req, false)
	if err != nil {
		return nil, err
	}

	var resp AuthResponse
	if err := api.UnmarshalData(body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns the issued session token.
func (s *AuthService) Register(req RegisterRequest) (*AuthResponse, error) {
	if err := validators.Check(req); err != nil {
		return nil, err
	}

	body, err := s.client.Post(api.EndpointRegister(), req, false)
	if err != nil {
		return nil, err
	}

	var resp AuthResponse
	if err := api.UnmarshalData(body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser fetches the account behind the current bearer token. Fails
// with a 401 RequestError when the token is absent or no longer valid.
func (s *AuthService) CurrentUser() (*models.User, error) {
	body, err := s.client.Get(api.EndpointMe(), true)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := api.UnmarshalData(body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout tells the server to invalidate the session. Best-effort; local
// state clearing never waits on this call.
func (s *AuthService) Logout() error {
	_, err := s.client.Post(api.EndpointLogout(), nil, true)
	return err
}

// RevokeToken invalidates the given token server-side. The session manager
// calls this after it has already cleared local state, so the token must be
// passed explicitly.
func (s *AuthService) RevokeToken(token string) error {
	_, err := s.client.DoWithToken(http.MethodPost, api.EndpointLogout(), nil, token)
	return err
}
