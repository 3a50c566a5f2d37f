package gomicroauth

import (
	"encoding/json"
	"net/http"
)

type registerUserResponse struct {
	Message string `json:"message"`
}

type authInfoResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func RegisterUserHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeRegisterUserRequest(r)
		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if _, err := svc.RegisterNewUser(req); err != nil {
			encodeError(err, w)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(&registerUserResponse{Message: "user created"})
	})
}

func LoginHandler(svc Service, issuer *TokenIssuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeLoginRequest(r)
		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		user, err := svc.ValidateCredentials(req)
		if err != nil {
			encodeError(err, w)
			return
		}

		pair, err := issuer.Issue(user)
		if err != nil {
			encodeError(err, w)
			return
		}

		json.NewEncoder(w).Encode(&pair)
	})
}

// AuthInfoHandler echoes the identity claims of the access token that
// RequireAuth already verified.
func AuthInfoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			encodeError(ErrInvalidToken, w)
			return
		}

		json.NewEncoder(w).Encode(&authInfoResponse{Username: claims.Username, Email: claims.Email})
	})
}

func encodeError(err error, w http.ResponseWriter) {
	switch err {
	case ErrEmptyUserName, ErrInvalidEmail, ErrEmptyPassword, ErrMissingCredentials,
		ErrExistingUsername, ErrExistingEmail, ErrNotFound, ErrInvalidPassword:
		w.WriteHeader(http.StatusBadRequest)
	case ErrInvalidToken:
		w.WriteHeader(http.StatusUnauthorized)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}

func decodeRegisterUserRequest(r *http.Request) (registerUserRequest, error) {
	req := registerUserRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return registerUserRequest{}, err
	}
	return req, nil
}

func decodeLoginRequest(r *http.Request) (loginRequest, error) {
	req := loginRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return loginRequest{}, err
	}
	return req, nil
}
