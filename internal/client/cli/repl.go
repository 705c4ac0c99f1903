package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Activate(ctx context.Context) error
	RecoverPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	MakePublic(ctx context.Context) error
	AvatarUpload(ctx context.Context) error
	Invite(ctx context.Context) error
	AcceptInvite(ctx context.Context) error
	RefuseInvite(ctx context.Context) error
	ListInvites(ctx context.Context) error
	ListContacts(ctx context.Context) error

	AddCategory(ctx context.Context) error
	ListCategories(ctx context.Context) error
	UpdateCategory(ctx context.Context) error
	AddRelease(ctx context.Context) error
	ListReleases(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, activate, recover, reset, login, exit"
	helpLoggedIn  = "Available commands: public, avatar, invite, accept, refuse, invites, contacts, " +
		"category add|list|update, release add|list, logout, exit"
)

// runREPL reads commands line by line from in and dispatches them to a.
// Commands that need a session are refused until the user logs in.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("fin %s> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		handler, ok := dispatch(a, cmd, args)
		if !ok {
			printlnFn("Unknown command:", strings.Join(parts, " "))
			continue
		}
		if handler == nil {
			continue
		}
		if err := handler(ctx); err != nil {
			printlnFn("Error:", err)
		}
	}
}

// dispatch resolves a command to its handler. A nil handler with ok set means
// the command was handled inline.
func dispatch(a execIface, cmd string, args []string) (func(context.Context) error, bool) {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpAnonymous)
		}
		return nil, true
	case "register":
		return a.Register, true
	case "activate":
		return a.Activate, true
	case "recover":
		return a.RecoverPassword, true
	case "reset":
		return a.ResetPassword, true
	case "login":
		return a.Login, true
	}

	if !a.isLoggedIn() {
		switch cmd {
		case "logout", "public", "avatar", "invite", "accept", "refuse", "invites", "contacts",
			"category", "release":
			printlnFn("Please login first")
			return nil, true
		}
		return nil, false
	}

	switch cmd {
	case "logout":
		return a.Logout, true
	case "public":
		return a.MakePublic, true
	case "avatar":
		return a.AvatarUpload, true
	case "invite":
		return a.Invite, true
	case "accept":
		return a.AcceptInvite, true
	case "refuse":
		return a.RefuseInvite, true
	case "invites":
		return a.ListInvites, true
	case "contacts":
		return a.ListContacts, true
	case "category":
		if len(args) == 0 {
			printlnFn("Usage: category add|list|update")
			return nil, true
		}
		switch args[0] {
		case "add":
			return a.AddCategory, true
		case "list":
			return a.ListCategories, true
		case "update":
			return a.UpdateCategory, true
		}
	case "release":
		if len(args) == 0 {
			printlnFn("Usage: release add|list")
			return nil, true
		}
		switch args[0] {
		case "add":
			return a.AddRelease, true
		case "list":
			return a.ListReleases, true
		}
	}
	return nil, false
}
