package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dom/floricola-erp/internal/client"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	tokenPath := os.Getenv("ERPCTL_TOKEN_FILE")
	if tokenPath == "" {
		path, err := client.DefaultTokenPath()
		if err != nil {
			fmt.Printf("Error: cannot locate config dir: %v\n", err)
			os.Exit(1)
		}
		tokenPath = path
	}

	api := client.New(apiURL)
	session := client.NewSession(api, client.NewFileTokenStore(tokenPath))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "health":
		err = healthCmd(ctx, api)
	case "init":
		err = initCmd(ctx, api)
	case "register":
		err = registerCmd(ctx, api, args)
	case "login":
		err = loginCmd(ctx, session, args)
	case "logout":
		err = session.Logout()
		if err == nil {
			fmt.Println("Logged out")
		}
	case "me":
		err = meCmd(ctx, session)
	case "clientes":
		err = clientesCmd(ctx, session, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Printf("Error: %s\n", describe(err))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`erpctl - command line client for the floricola ERP backend

USAGE:
  erpctl <command> [options]

COMMANDS:
  health                 Check the backend is up
  init                   Create the users and clientes tables
  register               Create an account (--email, --role)
  login                  Log in and store the session token (--email)
  logout                 Forget the stored token
  me                     Show the logged in identity
  clientes list          List clientes, most recent first
  clientes add <nombre>  Create a cliente
  clientes rm <id>       Delete a cliente
  help                   Show this help message

ENVIRONMENT:
  API_URL            Backend API URL (default: http://localhost:8080)
  ERPCTL_TOKEN_FILE  Token file (default: <user config dir>/floricola/token)`)
}

func healthCmd(ctx context.Context, api *client.Client) error {
	msg, err := api.Health(ctx)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func initCmd(ctx context.Context, api *client.Client) error {
	if err := api.InitSchema(ctx); err != nil {
		return err
	}
	fmt.Println("Tables ready")
	return nil
}

func registerCmd(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	role := fs.String("role", "", "Account role (default user)")
	fs.Parse(args)

	if *email == "" {
		*email = prompt("Email: ")
	}
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	user, err := api.Register(ctx, *email, password, *role)
	if err != nil {
		return err
	}
	fmt.Printf("Registered %s (id: %s, role: %s)\n", user.Email, user.ID, user.Role)
	return nil
}

func loginCmd(ctx context.Context, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	fs.Parse(args)

	if *email == "" {
		*email = prompt("Email: ")
	}
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	if err := session.Login(ctx, *email, password); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", session.User().Email)
	return nil
}

func meCmd(ctx context.Context, session *client.Session) error {
	view, err := session.Restore(ctx)
	if err != nil {
		return err
	}
	if view != client.ViewMain {
		return errNotLoggedIn
	}

	user := session.User()
	fmt.Printf("id:    %s\nemail: %s\nrole:  %s\n", user.ID, user.Email, user.Role)
	return nil
}

func clientesCmd(ctx context.Context, session *client.Session, args []string) error {
	view, err := session.Restore(ctx)
	if err != nil {
		return err
	}
	if view != client.ViewMain {
		return errNotLoggedIn
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		clientes, err := session.Clientes(ctx)
		if err != nil {
			return err
		}
		printClientes(clientes)
	case "add":
		nombre := strings.TrimSpace(strings.Join(args[1:], " "))
		if nombre == "" {
			return errors.New("usage: erpctl clientes add <nombre>")
		}
		if err := session.AddCliente(ctx, nombre); err != nil {
			return err
		}
		printClientes(session.Loaded())
	case "rm":
		if len(args) < 2 {
			return errors.New("usage: erpctl clientes rm <id>")
		}
		if err := session.DeleteCliente(ctx, args[1]); err != nil {
			return err
		}
		printClientes(session.Loaded())
	default:
		return fmt.Errorf("unknown clientes command: %s", sub)
	}
	return nil
}

var errNotLoggedIn = errors.New("not logged in, run: erpctl login")

func printClientes(clientes []client.Cliente) {
	if len(clientes) == 0 {
		fmt.Println("No clientes")
		return
	}
	for _, c := range clientes {
		fmt.Printf("%s  %s  %s\n", c.ID, c.CreatedAt.Local().Format("2006-01-02 15:04"), c.Nombre)
	}
}

var stdin = bufio.NewReader(os.Stdin)

func prompt(label string) string {
	fmt.Print(label)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

func readPassword(label string) (string, error) {
	fmt.Print(label)
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

// describe prints the server's message as-is for API errors.
func describe(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
