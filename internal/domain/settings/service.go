// Package settings es la pantalla de ajustes: perfil y cambio de contraseña simulados.
// No hay autenticación real; nada se persiste.
package settings

import (
	"errors"
	"fmt"

	"pet-companion/internal/platform/form"
	"pet-companion/internal/platform/logger"
	"pet-companion/internal/platform/modal"
)

const (
	// mockPassword es la única contraseña "actual" que se acepta.
	mockPassword      = "password"
	minPasswordLength = 6

	PasswordChanged = "Password changed successfully"
)

var ErrInvalidInput = errors.New("invalid input")

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PasswordForm struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

type Service struct {
	profile  Profile
	password *form.Form[PasswordForm]
	panel    *modal.Modal[struct{}]
	log      logger.Logger
}

func NewService(log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		profile:  Profile{Name: "John Doe", Email: "john@example.com"},
		password: form.New(PasswordForm{}),
		panel:    modal.New[struct{}](),
		log:      log.With(map[string]any{"module": "settings"}),
	}
}

func (s *Service) Profile() Profile { return s.profile }

// TogglePasswordForm abre o cierra el panel de cambio de contraseña.
func (s *Service) TogglePasswordForm() {
	if s.panel.Visible() {
		s.panel.Close()
		s.password.ResetForm()
		return
	}
	s.panel.Open()
}

func (s *Service) PasswordFormVisible() bool { return s.panel.Visible() }

func (s *Service) UpdatePasswordForm(fn func(*PasswordForm)) { s.password.UpdateFields(fn) }

func (s *Service) PasswordFormData() PasswordForm { return s.password.Data() }

// SubmitPasswordForm valida el formulario en curso. Si sale bien lo limpia y cierra el panel;
// si falla el formulario queda como estaba.
func (s *Service) SubmitPasswordForm() (string, error) {
	f := s.password.Data()
	msg, err := s.ChangePassword(f.OldPassword, f.NewPassword, f.ConfirmPassword)
	if err != nil {
		return "", err
	}
	s.password.ResetForm()
	s.panel.Close()
	return msg, nil
}

// ChangePassword aplica las reglas en orden: coincidencia, largo mínimo, contraseña actual.
func (s *Service) ChangePassword(oldPassword, newPassword, confirmPassword string) (string, error) {
	if newPassword != confirmPassword {
		return "", fmt.Errorf("%w: New passwords do not match", ErrInvalidInput)
	}
	if len(newPassword) < minPasswordLength {
		return "", fmt.Errorf("%w: Password must be at least %d characters long", ErrInvalidInput, minPasswordLength)
	}
	if oldPassword != mockPassword {
		return "", fmt.Errorf("%w: Current password is incorrect", ErrInvalidInput)
	}
	s.log.Info("password changed (mock)", nil)
	return PasswordChanged, nil
}
