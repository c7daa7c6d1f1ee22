package cli

import (
	"context"
	"fmt"

	"github.com/jruiz-dev/trendyshop/internal/common"
	"github.com/jruiz-dev/trendyshop/internal/directory"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// register collects the signup fields and creates an account with role user.
func (a *App) register(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Email:", a.out)
	if err != nil {
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		return
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Name:", a.out)
	if err != nil {
		return
	}
	surname, err := getSimpleText(a.reader, "Surname:", a.out)
	if err != nil {
		return
	}
	age, err := GetInt(a.reader, "Age:", a.out)
	if err != nil {
		return
	}

	in := directory.RegisterInput{Email: email, Name: name, Surname: surname, Age: age}
	if _, err := a.directory.Register(ctx, in, password); err != nil {
		a.reportError(err)
		return
	}

	fmt.Fprintln(a.out, "User registered successfully.")
}

// login authenticates and hands control to the role-appropriate menu loop.
func (a *App) login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Email:", a.out)
	if err != nil {
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		return
	}
	defer common.WipeByteArray(password)

	profile, err := a.directory.Login(ctx, email, password)
	if err != nil {
		a.reportError(err)
		return
	}

	a.current = profile
	if profile.IsAdmin() {
		fmt.Fprintln(a.out, "Welcome, administrator.")
		a.adminMenu(ctx)
	} else {
		fmt.Fprintf(a.out, "Welcome, %s.\n", profile.Name)
		a.userMenu(ctx)
	}
}

func (a *App) logout(ctx context.Context) {
	email, err := a.directory.Logout(ctx)
	if err != nil {
		a.reportError(err)
		return
	}
	if email != "" {
		fmt.Fprintf(a.out, "Signed out %s.\n", email)
	}
	a.current = nil
}

// resetPassword never confirms whether the email is registered.
func (a *App) resetPassword(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Email to reset:", a.out)
	if err != nil {
		return
	}
	if err := a.directory.ResetPassword(ctx, email); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "If that address is registered, a reset message has been issued.")
}

// modifyProfile updates the three mutable profile fields of the signed-in user.
func (a *App) modifyProfile(ctx context.Context) {
	name, err := getSimpleText(a.reader, "New name:", a.out)
	if err != nil {
		return
	}
	surname, err := getSimpleText(a.reader, "New surname:", a.out)
	if err != nil {
		return
	}
	age, err := GetInt(a.reader, "New age:", a.out)
	if err != nil {
		return
	}

	upd := directory.ProfileUpdate{Name: name, Surname: surname, Age: age}
	if err := a.directory.UpdateProfile(ctx, a.current.ID, upd); err != nil {
		a.reportError(err)
		return
	}

	a.current.Name = name
	a.current.Surname = surname
	a.current.Age = age
	fmt.Fprintln(a.out, "Your data has been updated.")
}

// deleteAccount removes the signed-in user's credential and profile, then
// ends the session.
func (a *App) deleteAccount(ctx context.Context) {
	if err := a.directory.DeleteAccount(ctx, a.current.ID); err != nil {
		a.reportError(err)
		return
	}
	fmt.Fprintln(a.out, "Account deleted. Signing out...")
	a.current = nil
}
