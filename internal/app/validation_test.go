package app

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/oriemcapital/banking-service/internal/domain"
)

func TestNormalizeAccountType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.AccountType
		wantErr bool
	}{
		{
			name:  "accepts checking",
			input: "checking",
			want:  domain.CheckingAccount,
		},
		{
			name:  "accepts savings",
			input: "savings",
			want:  domain.SavingsAccount,
		},
		{
			name:  "lower-cases input",
			input: "  ChEcKiNg ",
			want:  domain.CheckingAccount,
		},
		{
			name:    "rejects unknown type",
			input:   "premium",
			wantErr: true,
		},
		{
			name:    "rejects empty type",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeAccountType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got success with %q", got)
				}
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValidateInitialDeposit(t *testing.T) {
	tests := []struct {
		name        string
		accountType domain.AccountType
		amount      string
		wantErr     bool
	}{
		{
			name:        "checking below minimum",
			accountType: domain.CheckingAccount,
			amount:      "24.99",
			wantErr:     true,
		},
		{
			name:        "checking exactly at minimum",
			accountType: domain.CheckingAccount,
			amount:      "25.00",
		},
		{
			name:        "checking above minimum",
			accountType: domain.CheckingAccount,
			amount:      "500.00",
		},
		{
			name:        "savings below minimum",
			accountType: domain.SavingsAccount,
			amount:      "99.99",
			wantErr:     true,
		},
		{
			name:        "savings exactly at minimum",
			accountType: domain.SavingsAccount,
			amount:      "100.00",
		},
		{
			name:        "zero deposit",
			accountType: domain.CheckingAccount,
			amount:      "0",
			wantErr:     true,
		},
		{
			name:        "negative deposit",
			accountType: domain.CheckingAccount,
			amount:      "-25.00",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInitialDeposit(tt.accountType, decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNormalizeAccountStatus(t *testing.T) {
	for _, valid := range []string{"active", "frozen", "closed", " Active "} {
		if _, err := normalizeAccountStatus(valid); err != nil {
			t.Fatalf("expected %q to be a valid status, got %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "suspended", "deleted"} {
		if _, err := normalizeAccountStatus(invalid); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q, got %v", invalid, err)
		}
	}
}

func TestValidateStatusTransition_AllPairsPermitted(t *testing.T) {
	statuses := []domain.AccountStatus{
		domain.AccountStatusActive,
		domain.AccountStatusFrozen,
		domain.AccountStatusClosed,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			if err := validateStatusTransition(from, to); err != nil {
				t.Fatalf("expected %s -> %s to be permitted, got %v", from, to, err)
			}
		}
	}
}
