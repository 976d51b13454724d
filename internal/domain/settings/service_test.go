package settings

import (
	"errors"
	"strings"
	"testing"
)

func TestChangePassword_ValidationOrder(t *testing.T) {
	svc := NewService(nil)

	cases := []struct {
		name               string
		old, next, confirm string
		want               string
	}{
		// mismatch gana aunque todo lo demás también esté mal
		{"mismatch first", "wrong", "abc", "abd", "New passwords do not match"},
		{"too short", "wrong", "abc", "abc", "Password must be at least 6 characters long"},
		{"wrong current", "wrong", "secret1", "secret1", "Current password is incorrect"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ChangePassword(tc.old, tc.next, tc.confirm)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if !strings.HasSuffix(err.Error(), tc.want) {
				t.Fatalf("expected %q, got %q", tc.want, err.Error())
			}
		})
	}

	msg, err := svc.ChangePassword("password", "secret1", "secret1")
	if err != nil || msg != PasswordChanged {
		t.Fatalf("expected success, got %q, %v", msg, err)
	}
}

func TestPasswordForm_ResetOnlyOnSuccess(t *testing.T) {
	svc := NewService(nil)

	svc.TogglePasswordForm()
	if !svc.PasswordFormVisible() {
		t.Fatalf("expected visible")
	}
	svc.UpdatePasswordForm(func(f *PasswordForm) {
		f.OldPassword = "nope"
		f.NewPassword = "secret1"
		f.ConfirmPassword = "secret1"
	})
	if _, err := svc.SubmitPasswordForm(); err == nil {
		t.Fatalf("expected error")
	}
	if svc.PasswordFormData().OldPassword != "nope" || !svc.PasswordFormVisible() {
		t.Fatalf("failed submit must keep the form open and filled")
	}

	svc.UpdatePasswordForm(func(f *PasswordForm) { f.OldPassword = "password" })
	if _, err := svc.SubmitPasswordForm(); err != nil {
		t.Fatalf("SubmitPasswordForm: %v", err)
	}
	if svc.PasswordFormData() != (PasswordForm{}) || svc.PasswordFormVisible() {
		t.Fatalf("expected reset and closed form")
	}
}

func TestProfile_Mock(t *testing.T) {
	p := NewService(nil).Profile()
	if p.Name != "John Doe" || p.Email != "john@example.com" {
		t.Fatalf("unexpected profile %#v", p)
	}
}
