package auth

import (
	"testing"
)

func TestValidateRegister(t *testing.T) {
	valid := RegisterInput{
		Name:      "Alice",
		Email:     "alice@example.com",
		Password:  "secret1",
		Password2: "secret1",
	}

	tests := []struct {
		name      string
		mutate    func(in *RegisterInput)
		wantOK    bool
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid input",
			mutate: func(in *RegisterInput) {},
			wantOK: true,
		},
		{
			name:      "missing name",
			mutate:    func(in *RegisterInput) { in.Name = "" },
			wantField: "name",
			wantMsg:   "Name field is required",
		},
		{
			name:   "single character name is allowed",
			mutate: func(in *RegisterInput) { in.Name = "A" },
			wantOK: true,
		},
		{
			name:      "missing email",
			mutate:    func(in *RegisterInput) { in.Email = "" },
			wantField: "email",
			wantMsg:   "Email field is required",
		},
		{
			name:      "malformed email",
			mutate:    func(in *RegisterInput) { in.Email = "not-an-email" },
			wantField: "email",
			wantMsg:   "Email is invalid",
		},
		{
			name: "missing password",
			mutate: func(in *RegisterInput) {
				in.Password = ""
				in.Password2 = ""
			},
			wantField: "password",
			wantMsg:   "Password field is required",
		},
		{
			name: "password too short",
			mutate: func(in *RegisterInput) {
				in.Password = "abc"
				in.Password2 = "abc"
			},
			wantField: "password",
			wantMsg:   "Password must be at least 6 characters",
		},
		{
			name: "password too long",
			mutate: func(in *RegisterInput) {
				long := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" // 40 chars
				in.Password = long
				in.Password2 = long
			},
			wantField: "password",
			wantMsg:   "Password must be at most 30 characters",
		},
		{
			name:      "missing confirm password",
			mutate:    func(in *RegisterInput) { in.Password2 = "" },
			wantField: "password2",
			wantMsg:   "Confirm Password field is required",
		},
		{
			name:      "passwords do not match",
			mutate:    func(in *RegisterInput) { in.Password2 = "different" },
			wantField: "password2",
			wantMsg:   "Passwords must match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			errs, ok := ValidateRegister(in)

			if ok != tt.wantOK {
				t.Fatalf("ValidateRegister() ok = %v, want %v (errs: %v)", ok, tt.wantOK, errs)
			}
			if tt.wantOK {
				if len(errs) != 0 {
					t.Errorf("ValidateRegister() errs = %v, want empty", errs)
				}
				return
			}
			if got := errs[tt.wantField]; got != tt.wantMsg {
				t.Errorf("errs[%q] = %q, want %q", tt.wantField, got, tt.wantMsg)
			}
		})
	}
}

func TestValidateRegister_AllFieldsMissing(t *testing.T) {
	errs, ok := ValidateRegister(RegisterInput{})

	if ok {
		t.Fatal("ValidateRegister() ok = true for empty input")
	}

	for _, field := range []string{"name", "email", "password", "password2"} {
		if _, present := errs[field]; !present {
			t.Errorf("missing error for field %q: %v", field, errs)
		}
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name      string
		input     LoginInput
		wantOK    bool
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid input",
			input:  LoginInput{Email: "alice@example.com", Password: "secret1"},
			wantOK: true,
		},
		{
			name:      "missing email",
			input:     LoginInput{Password: "secret1"},
			wantField: "email",
			wantMsg:   "Email field is required",
		},
		{
			name:      "malformed email",
			input:     LoginInput{Email: "nope", Password: "secret1"},
			wantField: "email",
			wantMsg:   "Email is invalid",
		},
		{
			name:      "missing password",
			input:     LoginInput{Email: "alice@example.com"},
			wantField: "password",
			wantMsg:   "Password field is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, ok := ValidateLogin(tt.input)

			if ok != tt.wantOK {
				t.Fatalf("ValidateLogin() ok = %v, want %v (errs: %v)", ok, tt.wantOK, errs)
			}
			if !tt.wantOK {
				if got := errs[tt.wantField]; got != tt.wantMsg {
					t.Errorf("errs[%q] = %q, want %q", tt.wantField, got, tt.wantMsg)
				}
			}
		})
	}
}
