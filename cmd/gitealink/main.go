package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitealink/internal/common"
	"github.com/ternarybob/gitealink/internal/deeplink"
	"github.com/ternarybob/gitealink/internal/gitea"
	"github.com/ternarybob/gitealink/internal/services/auth"
	"github.com/ternarybob/gitealink/internal/services/issues"
	"github.com/ternarybob/gitealink/internal/services/notifications"
	"github.com/ternarybob/gitealink/internal/services/pulls"
	"github.com/ternarybob/gitealink/internal/services/repos"
	"github.com/ternarybob/gitealink/internal/storage"
)

var (
	configFile   = flag.String("config", "", "Configuration file path")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: gitealink [flags] <command> [args]

Commands:
  login <server-url> <token>   Validate and store credentials
  logout                       Delete stored credentials
  whoami                       Show the authenticated user
  repos [page]                 List your repositories
  issues <owner> <repo>        List open issues
  pulls <owner> <repo>         List open pull requests
  notifications                List unread notifications
  open <url>                   Classify a server URL into a navigation action

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("gitealink version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	// Auto-discover config file if not specified
	path := *configFile
	if path == "" {
		if _, err := os.Stat("gitealink.toml"); err == nil {
			path = "gitealink.toml"
		}
	}

	config, err := common.LoadConfig(path)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger := common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	store, db, err := storage.NewCredentialStore(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open local storage")
		os.Exit(1)
	}
	defer db.Close()

	authService := auth.NewService(store, logger)

	ctx := context.Background()

	if err := run(ctx, flag.Args(), authService, logger); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, authService *auth.Service, logger arbor.ILogger) error {
	command := args[0]

	// Login works from a clean slate; everything else restores the session.
	if command == "login" {
		if len(args) != 3 {
			return fmt.Errorf("usage: gitealink login <server-url> <token>")
		}
		if err := authService.Login(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s\n", authService.CurrentUser().DisplayName())
		return nil
	}

	authService.Start(ctx)

	if command == "logout" {
		authService.Logout(ctx)
		fmt.Println("Logged out")
		return nil
	}

	if authService.State() != auth.StateAuthenticated {
		return fmt.Errorf("not logged in, run: gitealink login <server-url> <token>")
	}

	client, err := authService.Client()
	if err != nil {
		return err
	}

	switch command {
	case "whoami":
		user := authService.CurrentUser()
		fmt.Printf("%s (%s)\n", user.DisplayName(), authService.ServerURL())
		return nil

	case "repos":
		return listRepositories(ctx, client)

	case "issues":
		if len(args) != 3 {
			return fmt.Errorf("usage: gitealink issues <owner> <repo>")
		}
		return listIssues(ctx, client, args[1], args[2])

	case "pulls":
		if len(args) != 3 {
			return fmt.Errorf("usage: gitealink pulls <owner> <repo>")
		}
		return listPullRequests(ctx, client, args[1], args[2])

	case "notifications":
		return listNotifications(ctx, client)

	case "open":
		if len(args) != 2 {
			return fmt.Errorf("usage: gitealink open <url>")
		}
		return classifyURL(args[1], authService.ServerURL(), logger)

	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func listRepositories(ctx context.Context, client *gitea.Client) error {
	service := repos.NewService(client)
	repositories, err := service.GetRepositories(ctx, 1, 20)
	if err != nil {
		return err
	}
	for _, r := range repositories {
		fmt.Printf("%-40s %s\n", r.FullName, r.Description)
	}
	return nil
}

func listIssues(ctx context.Context, client *gitea.Client, owner, repo string) error {
	service := issues.NewService(client)
	list, err := service.GetIssues(ctx, owner, repo, "open", 1, 20)
	if err != nil {
		return err
	}
	for _, issue := range list {
		fmt.Printf("#%-5d %s\n", issue.Number, issue.Title)
	}
	return nil
}

func listPullRequests(ctx context.Context, client *gitea.Client, owner, repo string) error {
	service := pulls.NewService(client)
	list, err := service.GetPullRequests(ctx, owner, repo, "open", 1, 20)
	if err != nil {
		return err
	}
	for _, pr := range list {
		fmt.Printf("#%-5d %-8s %s\n", pr.Number, pr.StatusText(), pr.Title)
	}
	return nil
}

func listNotifications(ctx context.Context, client *gitea.Client) error {
	service := notifications.NewService(client)
	list, err := service.GetNotifications(ctx, false, 1, 20)
	if err != nil {
		return err
	}
	for _, n := range list {
		subject := "(no subject)"
		if n.Subject != nil {
			subject = fmt.Sprintf("%s: %s", n.Subject.TypeDisplay(), n.Subject.Title)
		}
		fmt.Println(subject)
	}
	return nil
}

func classifyURL(raw, serverURL string, logger arbor.ILogger) error {
	target, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	server, err := url.Parse(serverURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	handler := deeplink.NewHandler(logger)
	if !handler.HandleURL(target, server) {
		fmt.Println("unhandled")
		return nil
	}

	action := handler.PendingAction()
	switch action.Type {
	case deeplink.ActionCreatePullRequest:
		fmt.Printf("create pull request: %s/%s %s <- %s\n",
			action.Owner, action.Repo, action.BaseBranch, action.HeadBranch)
	case deeplink.ActionViewIssue:
		fmt.Printf("view issue: %s/%s#%d\n", action.Owner, action.Repo, action.Number)
	case deeplink.ActionViewPullRequest:
		fmt.Printf("view pull request: %s/%s#%d\n", action.Owner, action.Repo, action.Number)
	case deeplink.ActionViewRepository:
		fmt.Printf("view repository: %s/%s\n", action.Owner, action.Repo)
	}
	handler.ClearPendingAction()
	return nil
}
