package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/foryougroup/field-reporter/internal/api"
	"github.com/foryougroup/field-reporter/internal/auth"
	"github.com/foryougroup/field-reporter/internal/config"
	"github.com/foryougroup/field-reporter/internal/employee"
	"github.com/foryougroup/field-reporter/internal/project"
	"github.com/foryougroup/field-reporter/internal/report"
	"github.com/foryougroup/field-reporter/internal/storage"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const usage = `field-reporter %s

Usage:
  field-reporter login -email <email> -password <password>
  field-reporter projects
  field-reporter drafts
  field-reporter submit -draft <id> [-force]
  field-reporter export -draft <id> -o <file.xlsx>
`

type services struct {
	auth     *auth.Service
	projects *project.Service
	drafts   *report.DraftStore
	submit   *report.Submitter
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, usage, version)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	fyneApp := app.NewWithID(cfg.AppID)
	store := storage.NewPrefStore(fyneApp.Preferences())

	client, err := api.New(cfg.BaseURL, cfg.Timeout, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "transport:", err)
		os.Exit(1)
	}

	projectSvc := project.NewService(client, logger)
	employeeSvc := employee.NewService(client, logger)
	drafts := report.NewDraftStore(store, logger)
	svc := services{
		auth:     auth.NewService(client, store, logger),
		projects: projectSvc,
		drafts:   drafts,
		submit:   report.NewSubmitter(projectSvc, employeeSvc, client, drafts, logger),
	}

	ctx := context.Background()
	if err := run(ctx, svc, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, svc services, command string, args []string) error {
	switch command {
	case "login":
		return runLogin(ctx, svc, args)
	case "projects":
		return runProjects(ctx, svc)
	case "drafts":
		return runDrafts(svc)
	case "submit":
		return runSubmit(ctx, svc, args)
	case "export":
		return runExport(svc, args)
	default:
		fmt.Fprintf(os.Stderr, usage, version)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runLogin(ctx context.Context, svc services, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}
	resp := svc.auth.Login(ctx, *email, *password)
	if !resp.Success {
		return fmt.Errorf("login: %s", resp.Message)
	}
	fmt.Printf("Zalogowano: %s (%s)\n", resp.Name, resp.Access)
	return nil
}

func runProjects(ctx context.Context, svc services) error {
	projects, err := svc.projects.Projects(ctx)
	if err != nil {
		return err
	}
	for _, p := range projects {
		fmt.Printf("%4d  %s\n", p.ID, p.Name)
	}
	return nil
}

func runDrafts(svc services) error {
	for _, d := range svc.drafts.List() {
		fmt.Printf("%s  %s  %s  (%d osób, %d aktywności)\n",
			d.ID, d.Date, d.ProjectName, len(d.Members), len(d.Activities))
	}
	return nil
}

func runSubmit(ctx context.Context, svc services, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	draftID := fs.String("draft", "", "draft report id")
	force := fs.Bool("force", false, "submit even when members have no hours")
	fs.Parse(args)
	if *draftID == "" {
		return fmt.Errorf("submit requires -draft")
	}
	draft, ok := svc.drafts.GetByID(*draftID)
	if !ok {
		return fmt.Errorf("draft %s not found", *draftID)
	}
	if len(draft.Members) == 0 {
		return fmt.Errorf("draft %s has no brigade members selected", *draftID)
	}
	if zero := draft.ZeroHourMembers(); len(zero) > 0 && !*force {
		return fmt.Errorf("members without hours: %s (use -force to submit anyway)",
			strings.Join(zero, ", "))
	}
	result := svc.submit.Submit(ctx, draft)
	if !result.Success {
		return fmt.Errorf("submit: %s", result.Message)
	}
	fmt.Println(result.Message)
	return nil
}

func runExport(svc services, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	draftID := fs.String("draft", "", "draft report id")
	out := fs.String("o", "raport.xlsx", "output file")
	fs.Parse(args)
	if *draftID == "" {
		return fmt.Errorf("export requires -draft")
	}
	draft, ok := svc.drafts.GetByID(*draftID)
	if !ok {
		return fmt.Errorf("draft %s not found", *draftID)
	}
	if err := report.ExportXLSX(draft, *out); err != nil {
		return err
	}
	fmt.Println("Zapisano", *out)
	return nil
}
