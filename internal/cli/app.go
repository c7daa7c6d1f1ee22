// Package cli renders the interactive storefront menus and routes choices to
// the directory and catalog services. No business rules live here; anything
// it validates is input sanitization for the prompt loop.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jruiz-dev/trendyshop/internal/catalog"
	"github.com/jruiz-dev/trendyshop/internal/common"
	"github.com/jruiz-dev/trendyshop/internal/directory"
	"github.com/jruiz-dev/trendyshop/internal/logging"
)

// directoryService is the slice of the user directory the menus need.
// The real *directory.Directory satisfies it; tests provide fakes.
type directoryService interface {
	Register(ctx context.Context, in directory.RegisterInput, password []byte) (*directory.Profile, error)
	Login(ctx context.Context, email string, password []byte) (*directory.Profile, error)
	Logout(ctx context.Context) (string, error)
	ResetPassword(ctx context.Context, email string) error
	UpdateProfile(ctx context.Context, id string, upd directory.ProfileUpdate) error
	DeleteAccount(ctx context.Context, id string) error
}

// catalogService is the slice of the product catalog the menus need.
type catalogService interface {
	Create(ctx context.Context, in catalog.ProductInput) (*catalog.Product, error)
	List(ctx context.Context) ([]catalog.Product, error)
	GetBySequence(ctx context.Context, seq int64) (*catalog.Product, error)
	Update(ctx context.Context, id string, in catalog.ProductInput) error
	Delete(ctx context.Context, id string) error
}

type App struct {
	directory directoryService
	catalog   catalogService
	logger    logging.Logger
	reader    *bufio.Reader
	out       io.Writer

	// current is the signed-in profile, nil when nobody is. Set by login,
	// cleared by logout and account deletion.
	current *directory.Profile
}

func NewApp(d directoryService, c catalogService, logger logging.Logger) *App {
	return &App{
		directory: d,
		catalog:   c,
		logger:    logger.With("component", "cli"),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
}

// reportError translates service errors into one user-visible line. Every
// failure is terminal for the current operation only; callers always return
// to the prompt.
func (a *App) reportError(err error) {
	switch {
	case errors.Is(err, common.ErrEmailInUse):
		fmt.Fprintln(a.out, "An account with that email already exists, try another one.")
	case errors.Is(err, common.ErrInvalidCredentials):
		fmt.Fprintln(a.out, "Login failed: invalid credentials.")
	case errors.Is(err, common.ErrProfileMissing):
		fmt.Fprintln(a.out, "Login failed: this account has no profile data. Contact an administrator.")
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintf(a.out, "Invalid input: %v\n", err)
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(a.out, "Not found.")
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}
