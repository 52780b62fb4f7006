// Command exitpass drives the exit-pass client flows from a terminal:
// login/logout, student submission, and the admin and security form
// lists. Configuration comes from EXITPASS_* environment variables (a
// .env file is honored); see exitpass.FromEnv.
//
// Usage:
//
//	exitpass login -email a@b.com -password secret -role student
//	exitpass signup -first A -last B -email a@b.com -password secret -confirm secret -role student
//	exitpass profile
//	exitpass submit -name "A B" -hostel H1 -room 101 -destination Home -purpose "weekend" -date 2026-09-05
//	exitpass list [-search term]
//	exitpass approve -email a@b.com
//	exitpass reject -email a@b.com -reason "not approved by hostel"
//	exitpass logout
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/MrEthical07/exitpass"
	"github.com/MrEthical07/exitpass/view"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: exitpass <login|signup|profile|submit|list|approve|reject|logout> [flags]")
		os.Exit(2)
	}

	cfg, err := exitpass.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Environment)
	defer logger.Sync()

	builder := exitpass.New().WithConfig(cfg).WithLogger(logger)
	if cfg.Session.RedisAddr != "" {
		builder = builder.WithRedis(redis.NewClient(&redis.Options{Addr: cfg.Session.RedisAddr}))
	}
	engine, err := builder.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := run(ctx, engine, logger, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func newLogger(env string) *zap.Logger {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.OutputPaths = []string{"stdout"}

	logger, err := config.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}

func run(ctx context.Context, engine *exitpass.Engine, logger *zap.Logger, command string, args []string) error {
	switch command {
	case "login":
		return runLogin(ctx, engine, args)
	case "signup":
		return runSignup(ctx, engine, args)
	case "profile":
		return runProfile(ctx, engine, logger, args)
	case "submit":
		return runSubmit(ctx, engine, logger, args)
	case "list":
		return runList(ctx, engine, logger, args)
	case "approve":
		return runApprove(ctx, engine, logger, args)
	case "reject":
		return runReject(ctx, engine, logger, args)
	case "logout":
		return engine.Logout(ctx)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runLogin(ctx context.Context, engine *exitpass.Engine, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", "student", "student, admin, or security")
	fs.Parse(args)

	tok, err := engine.Login(ctx, *email, *password, exitpass.Role(*role))
	if err != nil {
		return err
	}
	// Persisting is an explicit step; the CLI always wants it.
	if err := engine.SaveSession(ctx, tok); err != nil {
		return err
	}
	fmt.Println("logged in")
	return nil
}

func runSignup(ctx context.Context, engine *exitpass.Engine, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "account email")
	number := fs.String("number", "", "phone number (optional)")
	password := fs.String("password", "", "password")
	confirm := fs.String("confirm", "", "password confirmation")
	role := fs.String("role", "student", "student, admin, or security")
	fs.Parse(args)

	msg, err := engine.Signup(ctx, exitpass.SignupInput{
		FirstName:       *first,
		LastName:        *last,
		Email:           *email,
		Number:          *number,
		Password:        *password,
		PasswordConfirm: *confirm,
		Role:            exitpass.Role(*role),
	})
	if err != nil {
		return err
	}
	if msg == "" {
		msg = "registered"
	}
	fmt.Println(msg)
	return nil
}

func runProfile(ctx context.Context, engine *exitpass.Engine, logger *zap.Logger, args []string) error {
	student := view.NewStudent(engine, logger)
	if err := student.Init(ctx); err != nil {
		return err
	}
	p := student.Profile()
	status := p.FormStatus
	if status == "" {
		status = "Not Submitted"
	}
	fmt.Printf("%s %s <%s>\nform status: %s\n", p.FirstName, p.LastName, p.Email, status)
	return nil
}

func runSubmit(ctx context.Context, engine *exitpass.Engine, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	hostel := fs.String("hostel", "", "hostel")
	room := fs.String("room", "", "room number")
	destination := fs.String("destination", "", "destination")
	purpose := fs.String("purpose", "", "purpose of exit")
	date := fs.String("date", "", "exit date (YYYY-MM-DD)")
	parentNo := fs.String("parent", "", "parent phone number")
	whose := fs.String("whose", "", "whose request")
	locale := fs.String("locale", "", "locale tag")
	fs.Parse(args)

	student := view.NewStudent(engine, logger)
	if err := student.Init(ctx); err != nil {
		return err
	}
	if *locale != "" {
		ctx = exitpass.WithLocale(ctx, *locale)
	}
	form, err := student.Submit(ctx, exitpass.ExitForm{
		FullName:     *name,
		Hostel:       *hostel,
		RoomNo:       *room,
		Destination:  *destination,
		Purpose:      *purpose,
		Date:         *date,
		ParentNo:     *parentNo,
		WhoseRequest: *whose,
	})
	if err != nil {
		return err
	}
	fmt.Printf("submitted, status %s\n", form.Status)
	return nil
}

func runList(ctx context.Context, engine *exitpass.Engine, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "filter by email or name substring")
	fs.Parse(args)

	// Try the security view first; an admin session falls through to the
	// admin view, which lists the same forms.
	security, err := view.NewSecurity(engine, logger)
	if err != nil {
		return err
	}
	if err := security.Init(ctx); err == nil {
		printForms(security.Search(*search))
		return nil
	}

	admin, err := view.NewAdmin(engine, logger)
	if err != nil {
		return err
	}
	if err := admin.Init(ctx); err != nil {
		return err
	}
	printForms(admin.Forms())
	return nil
}

func runApprove(ctx context.Context, engine *exitpass.Engine, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("approve", flag.ExitOnError)
	email := fs.String("email", "", "student email")
	fs.Parse(args)

	admin, err := view.NewAdmin(engine, logger)
	if err != nil {
		return err
	}
	if err := admin.Init(ctx); err != nil {
		return err
	}
	form, err := admin.Approve(ctx, *email)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", form.Email, form.Status)
	return nil
}

func runReject(ctx context.Context, engine *exitpass.Engine, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("reject", flag.ExitOnError)
	email := fs.String("email", "", "student email")
	reason := fs.String("reason", "", "rejection reason (min 5 characters)")
	fs.Parse(args)

	admin, err := view.NewAdmin(engine, logger)
	if err != nil {
		return err
	}
	if err := admin.Init(ctx); err != nil {
		return err
	}
	form, err := admin.Reject(ctx, *email, *reason)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s (%s)\n", form.Email, form.Status, form.Reason)
	return nil
}

func printForms(forms []exitpass.ExitForm) {
	if len(forms) == 0 {
		fmt.Println("no exit forms found")
		return
	}
	for _, f := range forms {
		line := fmt.Sprintf("%-30s %-20s %-8s %-10s %s", f.Email, f.FullName, f.RoomNo, f.Date, f.Status)
		if f.Status == exitpass.StatusRejected && f.Reason != "" {
			line += " (" + f.Reason + ")"
		}
		fmt.Println(line)
	}
}
