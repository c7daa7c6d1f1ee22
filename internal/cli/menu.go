package cli

import (
	"context"
	"fmt"
)

// Run drives the top-level prompt loop: the main menu while nobody is signed
// in, then the role-appropriate menu after login. It returns on "Exit" or
// when input reaches EOF. A failed operation never ends the loop.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to TrendyShop")

	for {
		a.printMainMenu()
		choice, err := GetInt(a.reader, "Select an option:", a.out)
		if err != nil {
			return
		}

		switch choice {
		case 1:
			a.register(ctx)
		case 2:
			a.login(ctx)
		case 3:
			a.resetPassword(ctx)
		case 4:
			fmt.Fprintln(a.out, "Leaving TrendyShop...")
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

func (a *App) printMainMenu() {
	fmt.Fprintln(a.out, "\n--- TrendyShop Menu ---")
	fmt.Fprintln(a.out, "1. Register")
	fmt.Fprintln(a.out, "2. Log in")
	fmt.Fprintln(a.out, "3. Reset password")
	fmt.Fprintln(a.out, "4. Exit")
}

// userMenu loops until logout, account deletion, or EOF.
func (a *App) userMenu(ctx context.Context) {
	for a.current != nil {
		fmt.Fprintln(a.out, "\n--- User Menu ---")
		fmt.Fprintln(a.out, "1. Modify my data")
		fmt.Fprintln(a.out, "2. Delete my account")
		fmt.Fprintln(a.out, "3. List products")
		fmt.Fprintln(a.out, "4. View product details")
		fmt.Fprintln(a.out, "5. Log out")

		choice, err := GetInt(a.reader, "Select an option:", a.out)
		if err != nil {
			return
		}

		switch choice {
		case 1:
			a.modifyProfile(ctx)
		case 2:
			a.deleteAccount(ctx)
		case 3:
			a.listProducts(ctx)
		case 4:
			a.showProduct(ctx)
		case 5:
			a.logout(ctx)
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

// adminMenu is the user menu plus catalog administration.
func (a *App) adminMenu(ctx context.Context) {
	for a.current != nil {
		fmt.Fprintln(a.out, "\n--- Administrator Menu ---")
		fmt.Fprintln(a.out, "1. Modify my data")
		fmt.Fprintln(a.out, "2. Delete my account")
		fmt.Fprintln(a.out, "3. Create a product")
		fmt.Fprintln(a.out, "4. List products")
		fmt.Fprintln(a.out, "5. View product details")
		fmt.Fprintln(a.out, "6. Edit a product")
		fmt.Fprintln(a.out, "7. Delete a product")
		fmt.Fprintln(a.out, "8. Log out")

		choice, err := GetInt(a.reader, "Select an option:", a.out)
		if err != nil {
			return
		}

		switch choice {
		case 1:
			a.modifyProfile(ctx)
		case 2:
			a.deleteAccount(ctx)
		case 3:
			a.createProduct(ctx)
		case 4:
			a.listProducts(ctx)
		case 5:
			a.showProduct(ctx)
		case 6:
			a.editProduct(ctx)
		case 7:
			a.deleteProduct(ctx)
		case 8:
			a.logout(ctx)
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}
