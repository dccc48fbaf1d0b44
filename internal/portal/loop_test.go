package portal

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	signedIn bool
	admin    bool

	calls []string
	ids   []int
}

func (f *fakeExec) isSignedIn() bool { return f.signedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }

func (f *fakeExec) Home(context.Context)        { f.calls = append(f.calls, "home") }
func (f *fakeExec) FacultyPage(context.Context) { f.calls = append(f.calls, "faculty") }
func (f *fakeExec) AboutPage(context.Context)   { f.calls = append(f.calls, "about") }
func (f *fakeExec) ViewProfile(_ context.Context, id int) {
	f.calls = append(f.calls, "view")
	f.ids = append(f.ids, id)
}
func (f *fakeExec) Back(context.Context)    { f.calls = append(f.calls, "back") }
func (f *fakeExec) Forward(context.Context) { f.calls = append(f.calls, "forward") }
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.signedIn = true
	return nil
}
func (f *fakeExec) Guest(context.Context)    { f.calls = append(f.calls, "guest") }
func (f *fakeExec) Overview(context.Context) { f.calls = append(f.calls, "overview") }
func (f *fakeExec) MyProfile(context.Context) {
	f.calls = append(f.calls, "profile")
}
func (f *fakeExec) EditProfile(context.Context) error {
	f.calls = append(f.calls, "edit")
	return nil
}
func (f *fakeExec) UsersPage(context.Context) { f.calls = append(f.calls, "users") }
func (f *fakeExec) AddUser(context.Context) error {
	f.calls = append(f.calls, "add")
	return nil
}
func (f *fakeExec) DeleteUser(_ context.Context, id int) error {
	f.calls = append(f.calls, "del")
	f.ids = append(f.ids, id)
	return nil
}
func (f *fakeExec) Logout(context.Context) {
	f.calls = append(f.calls, "logout")
	f.signedIn = false
}

func runScript(t *testing.T, exec *fakeExec, lines ...string) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runLoop(context.Background(), exec, func() string { return "" }, sc, &out)
	return &out
}

func TestRunLoop_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec,
		"help",
		"faculty",
		"view 3",
		"back",
		"login",
		"profile",
		"del 4",
		"logout",
		"exit",
	)

	assert.Equal(t, []string{"faculty", "view", "back", "login", "profile", "del", "logout"}, exec.calls)
	assert.Equal(t, []int{3, 4}, exec.ids)
}

func TestRunLoop_BadIdArguments(t *testing.T) {
	exec := &fakeExec{admin: true, signedIn: true}
	runScript(t, exec,
		"view",
		"view abc",
		"del",
		"del x1",
		"exit",
	)

	assert.Empty(t, exec.calls)
}

func TestRunLoop_IgnoresBlankAndUnknown(t *testing.T) {
	exec := &fakeExec{}
	out := runScript(t, exec,
		"",
		"   ",
		"frobnicate",
		"quit",
	)

	assert.Empty(t, exec.calls)
	assert.Contains(t, out.String(), "Unknown command: frobnicate")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunLoop_WritesToGivenWriter(t *testing.T) {
	out := runScript(t, &fakeExec{}, "exit")

	assert.Contains(t, out.String(), "portal ")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunLoop_HelpMatchesRole(t *testing.T) {
	out := runScript(t, &fakeExec{}, "help", "exit")
	assert.Contains(t, out.String(), "login")
	assert.NotContains(t, out.String(), "users")

	out = runScript(t, &fakeExec{signedIn: true}, "help", "exit")
	assert.Contains(t, out.String(), "overview")
	assert.Contains(t, out.String(), "edit")
	assert.NotContains(t, out.String(), "users")
	assert.NotContains(t, out.String(), "add")
	assert.NotContains(t, out.String(), "del <id>")

	out = runScript(t, &fakeExec{signedIn: true, admin: true}, "help", "exit")
	assert.Contains(t, out.String(), "users")
	assert.Contains(t, out.String(), "del <id>")
}

func TestRunLoop_EOFExits(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec, "home")

	assert.Equal(t, []string{"home"}, exec.calls)
}
