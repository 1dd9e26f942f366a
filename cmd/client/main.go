package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/careernet/careernet/internal/client"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "API base URL")
	email := flag.String("email", "", "email for login")
	password := flag.String("password", "", "password for login")
	query := flag.String("search", "", "user search query")
	logout := flag.Bool("logout", false, "clear the stored session")
	flag.Parse()

	ctx := context.Background()
	session := client.NewSessionStore()
	api := client.New(*baseURL, session)

	if *logout {
		if err := api.Logout(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "logout: %v\n", err)
		}
		fmt.Println("session cleared")
		return
	}

	if *email != "" && *password != "" {
		result, err := api.Login(ctx, *email, *password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "login: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("logged in as %s\n", result.User.Email)
	}

	if !api.IsAuthenticated() {
		fmt.Fprintln(os.Stderr, "not authenticated: pass -email and -password")
		os.Exit(1)
	}

	me, err := api.Me(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "me: %v\n", err)
		os.Exit(1)
	}
	printJSON(me)

	if *query != "" {
		users, err := api.SearchUsers(ctx, *query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "search: %v\n", err)
			os.Exit(1)
		}
		printJSON(users)
	}
}

func printJSON(v interface{}) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}
