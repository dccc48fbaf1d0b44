package portal

import (
	"context"
	"errors"
	"fmt"

	"github.com/mshakil/ictportal/internal/common"
	"github.com/mshakil/ictportal/internal/models"
	"github.com/mshakil/ictportal/internal/router"
)

const defaultPassword = "user123"

// AddUser prompts an administrator for the new record's fields and creates
// it. A duplicate email blocks the creation with a notice; the directory is
// left untouched.
func (a *App) AddUser(ctx context.Context) error {
	if !a.isAdmin() {
		fmt.Fprintln(a.out, "Only administrators can add users.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Full Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	role, err := a.promptRole()
	if err != nil {
		return err
	}
	designation, err := getSimpleText(a.reader, "Designation", a.out)
	if err != nil {
		return err
	}
	department, err := getSimpleText(a.reader, "Department", a.out)
	if err != nil {
		return err
	}
	password, err := GetTextDefault(a.reader, "Password", defaultPassword, a.out)
	if err != nil {
		return err
	}

	created, err := a.dir.Create(ctx, models.User{
		Name:        name,
		Email:       email,
		Password:    password,
		Role:        role,
		Designation: designation,
		Department:  department,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			fmt.Fprintln(a.out, "A user with this email already exists!")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "User added successfully! (id %d)\n", created.Id)
	a.router.NavigateAdmin(ctx, router.PageUsers)
	return nil
}

// promptRole reads the new record's role, re-prompting until the answer is
// one of the two storable roles. Guest is a session-only pseudo-role and
// must never reach the directory.
func (a *App) promptRole() (models.Role, error) {
	for {
		answer, err := GetTextDefault(a.reader, "Role (admin/user)", string(models.RoleUser), a.out)
		if err != nil {
			return "", err
		}
		switch role := models.Role(answer); role {
		case models.RoleAdmin, models.RoleUser:
			return role, nil
		}
		fmt.Fprintln(a.out, "Role must be admin or user.")
	}
}

// DeleteUser removes a directory record after confirmation. Administrators
// cannot delete their own account.
func (a *App) DeleteUser(ctx context.Context, id int) error {
	if !a.isAdmin() {
		fmt.Fprintln(a.out, "Only administrators can delete users.")
		return nil
	}

	if actor, ok := a.sessions.Actor(); ok && actor.Id == id {
		fmt.Fprintln(a.out, "You cannot delete your own account.")
		return nil
	}

	target, found := a.dir.Find(id)
	if !found {
		fmt.Fprintf(a.out, "No user with id %d.\n", id)
		return nil
	}

	sure, err := Confirm(a.reader, fmt.Sprintf("Are you sure you want to delete %s?", target.Name), a.out)
	if err != nil {
		return err
	}
	if !sure {
		return nil
	}

	if err := a.dir.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "User deleted.")
	a.router.NavigateAdmin(ctx, router.PageUsers)
	return nil
}
