package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/client/validator"
	"github.com/dmitrijs2005/gophscan/internal/common"
)

var errUsage = errors.New("usage")

func usage(line string) error {
	return fmt.Errorf("%w: %s", errUsage, line)
}

func (a *App) newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// parseAnswers turns "question=answer" pairs into answers.
func parseAnswers(raw []string) ([]models.Answer, error) {
	var out []models.Answer
	for _, r := range raw {
		q, v, ok := strings.Cut(r, "=")
		if !ok {
			return nil, fmt.Errorf("answer %q is not question=answer", r)
		}
		id, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("answer %q: question must be numeric", r)
		}
		out = append(out, models.Answer{QuestionID: id, Value: v})
	}
	return out, nil
}

func (a *App) Scan(ctx context.Context, args []string) error {
	return a.checkIn(ctx, common.CheckInTypeEntry, args)
}

func (a *App) Exit(ctx context.Context, args []string) error {
	return a.checkIn(ctx, common.CheckInTypeExit, args)
}

func (a *App) checkIn(ctx context.Context, typ string, args []string) error {
	event, current := a.selection()

	fs := a.newFlagSet(typ)
	list := fs.Int64P("list", "l", current, "check-in list id")
	force := fs.BoolP("force", "f", false, "record the scan even if rules or earlier entries deny it")
	ignoreUnpaid := fs.BoolP("ignore-unpaid", "u", false, "admit pending orders on lists that include them")
	rawAnswers := fs.StringArrayP("answer", "a", nil, "answer to a check-in question, as question=answer")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var secret string
	switch fs.NArg() {
	case 0:
		s, err := GetSimpleText(a.reader, "Scan ticket", a.out)
		if err != nil {
			return err
		}
		secret = s
	case 1:
		secret = fs.Arg(0)
	default:
		return usage(typ + " [flags] [secret]")
	}
	if secret == "" {
		return usage(typ + " [flags] [secret]")
	}
	if *list == 0 {
		return errors.New("no check-in list selected, see 'lists'")
	}

	answers, err := parseAnswers(*rawAnswers)
	if err != nil {
		return err
	}

	d, err := a.validator.Validate(ctx, validator.ScanRequest{
		Secret:       secret,
		EventSlug:    event,
		ListID:       *list,
		Type:         typ,
		Force:        *force,
		IgnoreUnpaid: *ignoreUnpaid,
		Answers:      answers,
	})
	if err != nil {
		printDenied(a.out)
		return err
	}
	printDecision(a.out, d)
	return nil
}

func (a *App) Sync(ctx context.Context, args []string) error {
	event, _ := a.selection()

	fs := a.newFlagSet("sync")
	full := fs.Bool("full", false, "forget recorded timestamps and download everything")
	resource := fs.StringP("resource", "r", "", "only this resource")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kinds := []models.ResourceKind{
		models.ResourceEvents,
		models.ResourceItems,
		models.ResourceCheckInLists,
		models.ResourceRevokedSecrets,
		models.ResourceOrderPositions,
	}
	if *resource != "" {
		kinds = []models.ResourceKind{models.ResourceKind(*resource)}
	}
	if *full {
		for _, k := range kinds {
			if err := a.sync.Reset(ctx, event, k); err != nil {
				return err
			}
		}
	}

	var err error
	if *resource != "" {
		err = a.sync.SyncResource(ctx, event, kinds[0])
	} else {
		err = a.sync.Sync(ctx, event)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "sync complete")
	return nil
}

func (a *App) Drain(ctx context.Context, _ []string) error {
	event, _ := a.selection()
	res, err := a.queue.Drain(ctx, event)
	fmt.Fprintf(a.out, "uploaded %d, rejected %d, discarded %d, remaining %d\n",
		res.Uploaded, res.Rejected, res.Discarded, res.Remaining)
	return err
}

func (a *App) Status(ctx context.Context, _ []string) error {
	event, list := a.selection()

	pending, err := a.queue.Pending(ctx, event)
	if err != nil {
		return err
	}
	states, err := a.sync.Status(ctx, event)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "event %s, list %d, %s\n", event, list, a.mode())
	fmt.Fprintf(a.out, "queued redemptions: %d\n", pending)
	if len(states) == 0 {
		fmt.Fprintln(a.out, "never synced")
	}
	for _, st := range states {
		fmt.Fprintf(a.out, "  %-15s %s\n", st.Resource, st.SyncedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (a *App) Lists(ctx context.Context, args []string) error {
	event, current := a.selection()

	fs := a.newFlagSet("lists")
	use := fs.Int64("use", 0, "select the check-in list for scans")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lists, err := a.lists.List(ctx, event)
	if err != nil {
		return err
	}
	if *use != 0 {
		found := false
		for _, l := range lists {
			found = found || l.ID == *use
		}
		if !found {
			return fmt.Errorf("check-in list %d is not in the local cache", *use)
		}
		a.selectList(*use)
		current = *use
	}

	if len(lists) == 0 {
		fmt.Fprintln(a.out, "no check-in lists cached, run 'sync'")
	}
	for _, l := range lists {
		mark := " "
		if l.ID == current {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s %4d  %s\n", mark, l.ID, l.Name)
	}
	return nil
}

func (a *App) Token(_ context.Context, _ []string) error {
	tok, err := GetSecret("Device token", a.out)
	if err != nil {
		return err
	}
	if tok == "" {
		return errors.New("empty token")
	}
	a.client.SetDeviceToken(tok)
	fmt.Fprintln(a.out, "device token replaced")
	return nil
}
