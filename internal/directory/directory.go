// Package directory maps authenticated identities to user profiles: admin
// bootstrap, registration, login, profile updates, and account deletion.
// Credentials belong to the auth provider; this package owns the profile
// documents and the role assignment.
package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jruiz-dev/trendyshop/internal/auth"
	"github.com/jruiz-dev/trendyshop/internal/common"
	"github.com/jruiz-dev/trendyshop/internal/logging"
	"github.com/jruiz-dev/trendyshop/internal/store"
)

const usersCollection = "users"

// AdminConfig describes the well-known administrator created by the
// idempotent bootstrap. Values come from configuration, never literals.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
	Surname  string
	Age      int
}

type Directory struct {
	provider auth.Provider
	store    store.Store
	validate *validator.Validate
	logger   logging.Logger
	admin    AdminConfig
}

func New(provider auth.Provider, st store.Store, logger logging.Logger, admin AdminConfig) *Directory {
	return &Directory{
		provider: provider,
		store:    st,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With("component", "directory"),
		admin:    admin,
	}
}

// BootstrapAdmin ensures exactly one admin profile exists. It scans profiles
// for the configured admin email and creates credential plus profile when
// absent. Safe to call on every startup.
func (d *Directory) BootstrapAdmin(ctx context.Context) error {
	docs, err := d.store.List(ctx, usersCollection, "email", true)
	if err != nil {
		return fmt.Errorf("listing profiles: %w", err)
	}
	for _, doc := range docs {
		if store.StringField(doc.Data, "email") == d.admin.Email {
			d.logger.Debug(ctx, "admin profile present")
			return nil
		}
	}

	identity, err := d.provider.Register(ctx, d.admin.Email, []byte(d.admin.Password))
	if err != nil {
		if errors.Is(err, common.ErrEmailInUse) {
			// Credential exists but no profile document: a half-finished
			// bootstrap from a previous run. Surface it instead of guessing.
			return fmt.Errorf("admin credential exists without a profile: %w", err)
		}
		return fmt.Errorf("creating admin credential: %w", err)
	}

	doc := profileDoc(d.admin.Name, d.admin.Surname, d.admin.Age, d.admin.Email, RoleAdmin)
	if err := d.store.Put(ctx, usersCollection, identity, doc); err != nil {
		if delErr := d.provider.DeleteIdentity(ctx, identity); delErr != nil {
			d.logger.Error(ctx, "orphaned admin credential after failed bootstrap", "identity", identity, "error", delErr)
		}
		return fmt.Errorf("creating admin profile: %w", err)
	}

	d.logger.Info(ctx, "admin profile bootstrapped", "identity", identity)
	return nil
}

// Register creates a credential and a profile with role user. If the profile
// write fails after the credential succeeded, the credential is deleted again
// so no orphan remains.
func (d *Directory) Register(ctx context.Context, in RegisterInput, password []byte) (*Profile, error) {
	if err := d.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrValidation, err)
	}

	identity, err := d.provider.Register(ctx, in.Email, password)
	if err != nil {
		return nil, err
	}

	doc := profileDoc(in.Name, in.Surname, in.Age, in.Email, RoleUser)
	if err := d.store.Put(ctx, usersCollection, identity, doc); err != nil {
		if delErr := d.provider.DeleteIdentity(ctx, identity); delErr != nil {
			d.logger.Error(ctx, "orphaned credential after failed profile write", "identity", identity, "error", delErr)
		}
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	d.logger.Info(ctx, "user registered", "identity", identity)
	return &Profile{ID: identity, Name: in.Name, Surname: in.Surname, Age: in.Age, Email: in.Email, Role: RoleUser}, nil
}

// Login authenticates and loads the profile. A valid credential without a
// profile document yields common.ErrProfileMissing, which callers must report
// distinctly from common.ErrInvalidCredentials.
func (d *Directory) Login(ctx context.Context, email string, password []byte) (*Profile, error) {
	identity, err := d.provider.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	doc, err := d.store.Get(ctx, usersCollection, identity)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrProfileMissing
		}
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	return profileFromDoc(identity, doc), nil
}

// Logout closes the active session and returns its email. With no session it
// is a no-op returning "".
func (d *Directory) Logout(ctx context.Context) (string, error) {
	email, err := d.provider.Logout(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			return "", nil
		}
		return "", err
	}
	return email, nil
}

// ResetPassword delegates to the provider. The provider reports success
// without revealing whether the email is registered.
func (d *Directory) ResetPassword(ctx context.Context, email string) error {
	return d.provider.SendPasswordReset(ctx, email)
}

// UpdateProfile changes name, surname, and age. Role and email are immutable.
func (d *Directory) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) error {
	if err := d.validate.Struct(upd); err != nil {
		return fmt.Errorf("%w: %s", common.ErrValidation, err)
	}

	partial := map[string]any{
		"name":    upd.Name,
		"surname": upd.Surname,
		"age":     upd.Age,
	}
	if err := d.store.Update(ctx, usersCollection, id, partial); err != nil {
		return err
	}

	d.logger.Info(ctx, "profile updated", "identity", id)
	return nil
}

// DeleteAccount removes the profile and the credential of the currently
// authenticated principal. The profile goes first; if the credential deletion
// then fails, the profile is written back so both records stay consistent.
func (d *Directory) DeleteAccount(ctx context.Context, id string) error {
	doc, err := d.store.Get(ctx, usersCollection, id)
	if err != nil {
		return err
	}

	if err := d.store.Delete(ctx, usersCollection, id); err != nil {
		return err
	}

	if err := d.provider.DeleteCurrentUser(ctx); err != nil {
		if putErr := d.store.Put(ctx, usersCollection, id, doc); putErr != nil {
			d.logger.Error(ctx, "profile lost after failed credential delete", "identity", id, "error", putErr)
		}
		return fmt.Errorf("deleting credential: %w", err)
	}

	d.logger.Info(ctx, "account deleted", "identity", id)
	return nil
}

func profileDoc(name, surname string, age int, email string, role Role) map[string]any {
	return map[string]any{
		"name":    name,
		"surname": surname,
		"age":     age,
		"email":   email,
		"role":    string(role),
	}
}

func profileFromDoc(id string, doc map[string]any) *Profile {
	role := Role(store.StringField(doc, "role"))
	if role != RoleAdmin {
		role = RoleUser
	}
	return &Profile{
		ID:      id,
		Name:    store.StringField(doc, "name"),
		Surname: store.StringField(doc, "surname"),
		Age:     int(store.Int64Field(doc, "age")),
		Email:   store.StringField(doc, "email"),
		Role:    role,
	}
}
