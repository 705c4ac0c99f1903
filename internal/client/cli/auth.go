package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/finances/internal/common"
)

var errPasswordMismatch = errors.New("passwords do not match")

// Register prompts for the account details and creates an inactive account.
// The server mails an activation code to the given address.
func (a *App) Register(ctx context.Context) error {
	email, err := a.getRequired("Enter email")
	if err != nil {
		return err
	}
	firstName, err := a.getRequired("Enter first name")
	if err != nil {
		return err
	}
	lastName, err := a.getRequired("Enter last name")
	if err != nil {
		return err
	}

	password, err := a.readNewPassword("Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Register(ctx, email, firstName, lastName, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created. Check your mailbox for the activation code, then run 'activate'.")
	return nil
}

func (a *App) Activate(ctx context.Context) error {
	code, err := a.getRequired("Enter activation code")
	if err != nil {
		return err
	}
	if err := a.client.Activate(ctx, code); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account activated, you can login now.")
	return nil
}

// RecoverPassword asks the server to mail a recovery code. The server answers
// the same way whether or not the address is known.
func (a *App) RecoverPassword(ctx context.Context) error {
	email, err := a.getRequired("Enter email")
	if err != nil {
		return err
	}
	if err := a.client.RecoverPassword(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "If the address is registered, a recovery code is on its way. Run 'reset' to set a new password.")
	return nil
}

func (a *App) ResetPassword(ctx context.Context) error {
	code, err := a.getRequired("Enter recovery code")
	if err != nil {
		return err
	}

	password, err := a.readNewPassword("Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.ResetPassword(ctx, code, string(password)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

// Login prompts for credentials and keeps the issued tokens in the client.
func (a *App) Login(ctx context.Context) error {
	email, err := a.getRequired("Enter email")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Login(ctx, email, string(password)); err != nil {
		return err
	}

	a.email = email
	fmt.Fprintln(a.out, "Logged in as", email)
	return nil
}

func (a *App) Logout(_ context.Context) error {
	a.client.Logout()
	a.email = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// readNewPassword reads a password twice and checks both entries match.
func (a *App) readNewPassword(prompt string) ([]byte, error) {
	password, err := getPassword(a.out, prompt)
	if err != nil {
		return nil, err
	}
	if len(password) < common.MinPasswordLength {
		common.WipeByteArray(password)
		return nil, fmt.Errorf("password must be at least %d characters", common.MinPasswordLength)
	}

	confirm, err := getPassword(a.out, "Repeat password")
	if err != nil {
		common.WipeByteArray(password)
		return nil, err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		common.WipeByteArray(password)
		return nil, errPasswordMismatch
	}
	return password, nil
}
