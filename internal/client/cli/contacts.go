package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/finances/internal/client/client"
	pb "github.com/dmitrijs2005/finances/internal/proto"
)

// MakePublic publishes the user's contact identity under a username.
// The avatar key is optional and comes from a previous 'avatar' upload.
func (a *App) MakePublic(ctx context.Context) error {
	username, err := a.getRequired("Enter public username")
	if err != nil {
		return err
	}
	avatarKey, err := getSimpleText(a.reader, "Enter avatar key (empty for none)", a.out)
	if err != nil {
		return err
	}

	c, err := a.client.MakePublic(ctx, username, avatarKey)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Public as %s (id %s)\n", c.Username, c.Id)
	if c.AvatarUrl != "" {
		fmt.Fprintln(a.out, "Avatar:", c.AvatarUrl)
	}
	return nil
}

// readFile and upload are test seams for the avatar upload.
var (
	readFile = os.ReadFile
	upload   = client.UploadToPresignedURL
)

// AvatarUpload requests a presigned upload URL and, when a file is given,
// uploads the image to it. The printed key is then passed to 'public'.
func (a *App) AvatarUpload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter image path (empty to print the URL only)", a.out)
	if err != nil {
		return err
	}

	var data []byte
	if path != "" {
		if data, err = readFile(path); err != nil {
			return err
		}
	}

	key, url, err := a.client.AvatarUploadURL(ctx)
	if err != nil {
		return err
	}

	if data == nil {
		fmt.Fprintln(a.out, "Upload with: curl -X PUT --upload-file <image>", fmt.Sprintf("%q", url))
	} else {
		if err := upload(ctx, url, data, http.DetectContentType(data)); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Avatar uploaded")
	}
	fmt.Fprintln(a.out, "Avatar key:", key)
	return nil
}

func (a *App) Invite(ctx context.Context) error {
	userID, err := a.getRequired("Enter user id to invite")
	if err != nil {
		return err
	}
	inv, err := a.client.Invite(ctx, userID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Invite %s sent (%s)\n", inv.Id, inv.Status)
	return nil
}

func (a *App) AcceptInvite(ctx context.Context) error {
	return a.resolveInvite(ctx, a.client.AcceptInvite)
}

func (a *App) RefuseInvite(ctx context.Context) error {
	return a.resolveInvite(ctx, a.client.RefuseInvite)
}

func (a *App) resolveInvite(ctx context.Context, fn func(context.Context, string) (*pb.Invite, error)) error {
	id, err := a.getRequired("Enter invite id")
	if err != nil {
		return err
	}
	inv, err := fn(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Invite %s is now %s\n", inv.Id, inv.Status)
	return nil
}

func (a *App) ListInvites(ctx context.Context) error {
	items, err := a.client.ListInvites(ctx)
	if err != nil {
		return err
	}
	a.printInvites(items, "No pending invites")
	return nil
}

func (a *App) ListContacts(ctx context.Context) error {
	items, err := a.client.ListContacts(ctx)
	if err != nil {
		return err
	}
	a.printInvites(items, "No contacts yet")
	return nil
}

func (a *App) printInvites(items []*pb.Invite, empty string) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, empty)
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFROM\tTO\tSTATUS\tCREATED")
	for _, i := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", i.Id, i.RequesterId, i.ReceiverId, i.Status, i.GetCreatedAt().AsTime().Format(time.DateTime))
	}
	w.Flush()
}
