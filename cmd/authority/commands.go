package main

import (
	"context"
	"crypto/ed25519"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/gophscan/internal/client/ticket"
	"github.com/dmitrijs2005/gophscan/internal/flagx"
	"github.com/dmitrijs2005/gophscan/internal/logging"
	"github.com/dmitrijs2005/gophscan/internal/server"
	"github.com/dmitrijs2005/gophscan/internal/server/auth"
	"github.com/dmitrijs2005/gophscan/internal/server/config"
	"github.com/dmitrijs2005/gophscan/internal/server/models"
	"github.com/dmitrijs2005/gophscan/internal/tracing"
)

const usage = `usage: authority [config flags] <command> [flags]

commands:
  serve    run the gRPC endpoint (--fixture preloads an event)
  import   load an event fixture file
  revoke   revoke a ticket secret (--event, --secret)
  token    issue a device token (--device, --events, --validity)
  keygen   create an Ed25519 ticket signing key (--out)
  mint     sign a ticket secret (--key, --item, --variation, --seed)`

var errUsage = errors.New(usage)

// env is what every command gets: the merged configuration, where to print
// results and a logger for everything else.
type env struct {
	cfg    *config.Config
	out    io.Writer
	logger logging.Logger
}

type command func(ctx context.Context, e *env, args []string) error

var commands = map[string]command{
	"serve":  serveCmd,
	"import": importCmd,
	"revoke": revokeCmd,
	"token":  tokenCmd,
	"keygen": keygenCmd,
	"mint":   mintCmd,
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return err
	}

	rest := flagx.DropArgs(args, config.ConfigFlags())
	if len(rest) == 0 {
		return errUsage
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		return fmt.Errorf("unknown command %q\n%w", rest[0], errUsage)
	}

	e := &env{cfg: cfg, out: out, logger: logging.NewJSON(os.Stderr, cfg.LogLevel)}
	return cmd(ctx, e, rest[1:])
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func readFixture(path string) (*models.Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fx models.Fixture
	if err := json.Unmarshal(b, &fx); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return &fx, nil
}

func serveCmd(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("serve")
	fixture := fs.String("fixture", "", "event fixture to import before serving")
	if err := fs.Parse(args); err != nil {
		return err
	}

	shutdown, err := tracing.Setup(ctx, "gophscan-authority", e.cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	app, err := server.NewApp(ctx, e.cfg, e.logger)
	if err != nil {
		return err
	}
	defer app.Close()

	if *fixture != "" {
		fx, err := readFixture(*fixture)
		if err != nil {
			return err
		}
		if err := app.Admin.Import(ctx, fx); err != nil {
			return err
		}
	}

	return app.Run(ctx)
}

func importCmd(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("import")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("import needs exactly one fixture file")
	}

	fx, err := readFixture(fs.Arg(0))
	if err != nil {
		return err
	}

	app, err := server.NewApp(ctx, e.cfg, e.logger)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Admin.Import(ctx, fx); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "imported %s: %d items, %d lists, %d positions, %d revoked\n",
		fx.Event.Slug, len(fx.Items), len(fx.Lists), len(fx.Positions), len(fx.Revoked))
	return nil
}

func revokeCmd(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("revoke")
	event := fs.String("event", "", "event slug")
	secret := fs.String("secret", "", "ticket secret")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *event == "" || *secret == "" {
		return errors.New("revoke needs --event and --secret")
	}

	app, err := server.NewApp(ctx, e.cfg, e.logger)
	if err != nil {
		return err
	}
	defer app.Close()

	rs, err := app.Admin.Revoke(ctx, *event, *secret)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "revoked %d\n", rs.ID)
	return nil
}

func tokenCmd(_ context.Context, e *env, args []string) error {
	fs := newFlagSet("token")
	device := fs.String("device", "", "device id")
	events := fs.StringSlice("events", nil, "event slugs the device may access; empty means all")
	validity := fs.Duration("validity", e.cfg.TokenValidity, "token lifetime, 0 for none")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *device == "" {
		return errors.New("token needs --device")
	}

	tok, err := auth.GenerateToken(*device, *events, []byte(e.cfg.SecretKey), time.Now(), *validity)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, tok)
	return nil
}

func keygenCmd(_ context.Context, e *env, args []string) error {
	fs := newFlagSet("keygen")
	path := fs.String("out", "ticket-key.pem", "where to write the private key")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return err
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}
	block := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	if err := os.WriteFile(*path, block, 0o600); err != nil {
		return err
	}

	encoded, err := ticket.EncodePublicKey(pub)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, encoded)
	return nil
}

func readPrivateKey(path string) (ed25519.PrivateKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(b)
	if block == nil || block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("%s: no PRIVATE KEY block", path)
	}
	k, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	priv, ok := k.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%s: not an Ed25519 key", path)
	}
	return priv, nil
}

func parseOptionalTime(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mintCmd(_ context.Context, e *env, args []string) error {
	fs := newFlagSet("mint")
	keyPath := fs.String("key", "ticket-key.pem", "private key written by keygen")
	seed := fs.String("seed", "", "ticket seed, random when empty")
	item := fs.Int64("item", 0, "item id")
	variation := fs.Int64("variation", 0, "variation id")
	validFrom := fs.String("valid-from", "", "RFC 3339 start of validity")
	validUntil := fs.String("valid-until", "", "RFC 3339 end of validity")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *item == 0 {
		return errors.New("mint needs --item")
	}

	priv, err := readPrivateKey(*keyPath)
	if err != nil {
		return err
	}

	p := ticket.Payload{Seed: *seed, ItemID: *item, VariationID: *variation}
	if p.Seed == "" {
		p.Seed = uuid.NewString()
	}
	if p.ValidFrom, err = parseOptionalTime(*validFrom); err != nil {
		return fmt.Errorf("--valid-from: %w", err)
	}
	if p.ValidUntil, err = parseOptionalTime(*validUntil); err != nil {
		return fmt.Errorf("--valid-until: %w", err)
	}

	secret, err := ticket.Encode(p, priv)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, secret)
	return nil
}
