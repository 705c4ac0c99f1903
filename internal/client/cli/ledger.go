package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	pb "github.com/dmitrijs2005/finances/internal/proto"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const dueDateLayout = time.DateOnly

func (a *App) AddCategory(ctx context.Context) error {
	desc, err := a.getRequired("Enter category description")
	if err != nil {
		return err
	}
	c, err := a.client.CreateCategory(ctx, desc)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Category %s created\n", c.Id)
	return nil
}

// ListCategories prints the user's categories, optionally filtered by a
// case-insensitive substring of the description.
func (a *App) ListCategories(ctx context.Context) error {
	filter, err := getSimpleText(a.reader, "Filter (empty for all)", a.out)
	if err != nil {
		return err
	}
	items, err := a.client.ListCategories(ctx, filter)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No categories")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDESCRIPTION")
	for _, c := range items {
		fmt.Fprintf(w, "%s\t%s\n", c.Id, c.Description)
	}
	w.Flush()
	return nil
}

func (a *App) UpdateCategory(ctx context.Context) error {
	id, err := a.getRequired("Enter category id")
	if err != nil {
		return err
	}
	desc, err := a.getRequired("Enter new description")
	if err != nil {
		return err
	}
	c, err := a.client.UpdateCategory(ctx, id, desc)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Category %s renamed to %q\n", c.Id, c.Description)
	return nil
}

// AddRelease records an income or expense. The amount is checked locally so
// a typo does not cost a round trip; the server applies the full rules.
func (a *App) AddRelease(ctx context.Context) error {
	categoryID, err := a.getRequired("Enter category id")
	if err != nil {
		return err
	}

	raw, err := a.getRequired("Enter value (e.g. 120.50)")
	if err != nil {
		return err
	}
	value, err := decimal.NewFromString(raw)
	if err != nil || !value.IsPositive() {
		return fmt.Errorf("invalid value %q", raw)
	}

	desc, err := getSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}

	kind, err := a.getChoice("Type", "income", "expense")
	if err != nil {
		return err
	}
	status, err := a.getChoice("Status", "pending", "paid")
	if err != nil {
		return err
	}

	rawDue, err := a.getRequired("Enter due date (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	due, err := time.Parse(dueDateLayout, rawDue)
	if err != nil {
		return fmt.Errorf("invalid due date %q", rawDue)
	}

	r, err := a.client.CreateRelease(ctx, &pb.Release{
		CategoryId:  categoryID,
		Value:       value.String(),
		Description: desc,
		Type:        kind,
		Status:      status,
		DueDate:     timestamppb.New(due),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Release %s recorded\n", r.Id)
	return nil
}

func (a *App) ListReleases(ctx context.Context) error {
	items, err := a.client.ListReleases(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No releases")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "DUE\tTYPE\tSTATUS\tVALUE\tDESCRIPTION\t")
	for _, r := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", r.GetDueDate().AsTime().Format(dueDateLayout), r.Type, r.Status, r.Value, r.Description)
	}
	w.Flush()
	return nil
}

// getChoice re-prompts until the answer is one of options (case-insensitive).
func (a *App) getChoice(prompt string, options ...string) (string, error) {
	full := fmt.Sprintf("%s (%s)", prompt, strings.Join(options, "/"))
	for {
		s, err := a.getRequired(full)
		if err != nil {
			return "", err
		}
		for _, o := range options {
			if strings.EqualFold(s, o) {
				return o, nil
			}
		}
		fmt.Fprintln(a.out, "Choose one of:", strings.Join(options, ", "))
	}
}
