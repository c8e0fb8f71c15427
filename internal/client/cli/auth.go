package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/akulinin/campusmarket/internal/client/models"
	"github.com/akulinin/campusmarket/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
//
// On success the session store persists the snapshot and arms the API
// client with the bearer token; on failure the current session (if any)
// stays untouched. The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if !a.session.Login(ctx, email, string(password)) {
		printlnFn("Login failed. Check your credentials and try again.")
		return nil
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", a.session.Current().Name))
	return nil
}

// Register prompts for the account-creation form, validates it locally
// and creates the account. A successful registration signs the user in.
//
// The password and its confirmation are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	college, err := getSimpleText(a.reader, "Enter college", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password (min 6 characters): ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	req := models.RegisterRequest{
		Email:    email,
		Name:     name,
		College:  college,
		Password: string(password),
	}

	if err := req.Validate(string(confirm)); err != nil {
		switch {
		case errors.Is(err, common.ErrPasswordTooShort):
			printlnFn("Password must be at least 6 characters.")
		case errors.Is(err, common.ErrPasswordMismatch):
			printlnFn("Passwords do not match.")
		default:
			printlnFn(err.Error())
		}
		return err
	}

	if !a.session.Register(ctx, req) {
		printlnFn("Registration failed. Please try again.")
		return nil
	}

	printlnFn(fmt.Sprintf("Account created. Welcome, %s!", a.session.Current().Name))
	return nil
}

// Logout clears the in-memory session, disarms the API client and
// removes the persisted snapshot.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// requireLogin is the shared guard for commands that need a session.
func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		printlnFn("Please login first.")
		return common.ErrNotAuthenticated
	}
	return nil
}
