package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/framez-app/framez/internal/common"
	"github.com/framez-app/framez/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email, password and confirmation, then creates
// an account. Validation problems are printed as user-facing messages; a
// weak password is rendered as the full requirements checklist. Registration
// does not sign the user in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		fmt.Println("Passwords do not match")
		return nil
	}

	err = a.sessions.Register(ctx, name, email, string(password))

	var weak *session.WeakPasswordError
	switch {
	case err == nil:
		fmt.Println("Account created. You can now log in.")
	case errors.As(err, &weak):
		fmt.Println("Password must have:")
		for _, f := range weak.Failures {
			fmt.Println("  - " + f)
		}
	case errors.Is(err, common.ErrDuplicateEmail):
		fmt.Println("This email is already registered")
	case errors.Is(err, common.ErrInvalidEmail):
		fmt.Println("Please enter a valid email address")
	case errors.Is(err, common.ErrEmptyField):
		fmt.Println("Please fill in all fields")
	default:
		fmt.Println("Registration failed")
		return err
	}
	return nil
}

// Login prompts for credentials and signs the user in on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.sessions.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Println("Invalid credentials")
			return nil
		}
		fmt.Println("Login failed")
		return err
	}

	a.current = sess
	fmt.Printf("Welcome, %s!\n", sess.User.Name)
	return nil
}

// Logout clears the persisted session. Safe to call while signed out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		fmt.Println("Logout failed")
		return err
	}
	a.current = nil
	fmt.Println("Logged out")
	return nil
}

// Whoami prints the current session's user.
func (a *App) Whoami(ctx context.Context) error {
	if a.current == nil {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Printf("Signed in as %s (%s)\n", a.current.User.Name, a.current.User.Email)
	return nil
}

// Avatar prompts for an image reference and sets it on the signed-in
// account. Accepts http(s) URLs, data URIs, and local file paths via
// file://.
func (a *App) Avatar(ctx context.Context) error {
	if a.current == nil {
		fmt.Println("Not signed in")
		return nil
	}

	uri, err := getSimpleText(a.reader, "Enter avatar image URL or file:// path", os.Stdout)
	if err != nil {
		return err
	}

	// Cache what was actually stored; a file:// input comes back inlined
	// as a data URI.
	stored, err := a.sessions.UpdateAvatar(ctx, a.current.User.Email, uri)
	switch {
	case err == nil:
		a.current.User.Avatar = &stored
		fmt.Println("Avatar updated")
	case errors.Is(err, common.ErrInvalidAvatar):
		fmt.Println("Please enter a valid image reference")
	default:
		fmt.Println("Avatar update failed")
		return err
	}
	return nil
}
